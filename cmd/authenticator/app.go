package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/authenticator/modules/account"
	"github.com/dmitrymomot/authenticator/pkg/config"
	"github.com/dmitrymomot/authenticator/pkg/logger"
	"github.com/dmitrymomot/authenticator/pkg/mongo"
	"github.com/dmitrymomot/authenticator/pkg/secrets"
)

const serviceName = "authenticator"

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

// app holds what every command shares. log is replaced by setup once the
// configuration is known.
type app struct {
	log *slog.Logger
}

func newApp() *app {
	return &app{log: logger.New(logger.WithOutput(os.Stderr), logger.WithTextFormatter())}
}

// setup loads the --env-file files and builds the logger from APP_ENV and LOG_LEVEL.
// Logs go to stderr so command output on stdout stays clean.
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if files := cmd.StringSlice("env-file"); len(files) > 0 {
		if err := config.LoadEnv(files...); err != nil {
			return ctx, err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return ctx, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(commandExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel, slog.LevelInfo)))
	}

	a.log = logger.New(opts...)
	logger.SetAsDefault(a.log)
	return ctx, nil
}

type commandKey struct{}

func withCommand(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, commandKey{}, name)
}

// commandExtractor adds the running command to every record logged with its context.
func commandExtractor(ctx context.Context) (slog.Attr, bool) {
	name, _ := ctx.Value(commandKey{}).(string)
	if name == "" {
		return slog.Attr{}, false
	}
	return logger.Command(name), true
}

// track wraps every action in cmds and their subcommands: the action's context carries
// the command name, and completion is logged at debug level with the elapsed time.
func (a *app) track(cmds []*cli.Command) {
	for _, c := range cmds {
		a.track(c.Commands)
		if c.Action == nil {
			continue
		}
		action := c.Action
		c.Action = func(ctx context.Context, cmd *cli.Command) error {
			ctx = withCommand(ctx, cmd.FullName())
			start := time.Now()
			err := action(ctx, cmd)
			a.log.DebugContext(ctx, "command finished",
				logger.Duration(time.Since(start)),
				logger.Error(err),
			)
			return err
		}
	}
}

// newAccountService connects to MongoDB and returns the account service together
// with a function that closes the connection.
func (a *app) newAccountService(ctx context.Context) (*account.Service, func(), error) {
	cipher, err := secrets.Default()
	if err != nil {
		return nil, nil, err
	}

	var cfg mongo.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}

	db, err := mongo.NewWithDatabase(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			a.log.ErrorContext(ctx, "failed to disconnect from mongodb", logger.Error(err))
		}
	}

	repo := account.NewMongoRepository(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}

	log := a.log.With(logger.Component("accounts"))
	return account.NewService(repo, cipher, account.WithLogger(log)), closeFn, nil
}
