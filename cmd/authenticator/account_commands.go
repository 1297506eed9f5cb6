package main

import (
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/authenticator/cmd/authenticator/commands"
	"github.com/dmitrymomot/authenticator/modules/account"
	"github.com/dmitrymomot/authenticator/pkg/config"
	"github.com/dmitrymomot/authenticator/pkg/logger"
	"github.com/dmitrymomot/authenticator/pkg/mongo"
)

func userFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "user",
		Aliases:  []string{"u"},
		Required: true,
		Usage:    "Owner of the accounts",
		Sources:  cli.EnvVars("AUTHENTICATOR_USER"),
	}
}

func (a *app) accountCommands() *cli.Command {
	// withService opens the MongoDB-backed account service for the duration of one command.
	withService := func(run func(ctx context.Context, cmd *cli.Command, svc *account.Service) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			svc, closeFn, err := a.newAccountService(ctx)
			if err != nil {
				return err
			}
			defer closeFn()
			return run(ctx, cmd, svc)
		}
	}

	return &cli.Command{
		Name:  "accounts",
		Usage: "Manage stored TOTP accounts",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Store a new account",
				Flags: []cli.Flag{
					userFlag(),
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true, Usage: "Account name, usually the login"},
					&cli.StringFlag{Name: "issuer", Aliases: []string{"i"}, Required: true, Usage: "Service the account belongs to"},
					&cli.StringFlag{Name: "secret", Aliases: []string{"s"}, Required: true, Usage: "Base32 secret"},
					&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "Tag, repeatable"},
					&cli.IntFlag{Name: "period", Aliases: []string{"p"}, Usage: "Time step in seconds (default 30)"},
				},
				Action: withService(func(ctx context.Context, cmd *cli.Command, svc *account.Service) error {
					return commands.RunAddAccount(ctx, os.Stdout, svc, cmd.String("user"), account.CreateInput{
						Name:   cmd.String("name"),
						Issuer: cmd.String("issuer"),
						Secret: cmd.String("secret"),
						Tags:   cmd.StringSlice("tag"),
						Period: cmd.Int("period"),
					})
				}),
			},
			{
				Name:  "list",
				Usage: "List stored accounts",
				Flags: []cli.Flag{
					userFlag(),
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Search text, tag:<name> matches tags only"},
				},
				Action: withService(func(ctx context.Context, cmd *cli.Command, svc *account.Service) error {
					return commands.RunListAccounts(ctx, os.Stdout, svc, cmd.String("user"), cmd.String("query"))
				}),
			},
			{
				Name:  "codes",
				Usage: "Print the current code of every account",
				Flags: []cli.Flag{
					userFlag(),
					&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Search text, tag:<name> matches tags only"},
				},
				Action: withService(func(ctx context.Context, cmd *cli.Command, svc *account.Service) error {
					return commands.RunCodes(ctx, os.Stdout, svc, cmd.String("user"), cmd.String("query"), time.Now())
				}),
			},
			{
				Name:  "delete",
				Usage: "Delete an account",
				Flags: []cli.Flag{
					userFlag(),
					&cli.StringFlag{Name: "id", Required: true, Usage: "Account ID"},
				},
				Action: withService(func(ctx context.Context, cmd *cli.Command, svc *account.Service) error {
					return commands.RunDeleteAccount(ctx, os.Stdout, svc, cmd.String("user"), cmd.String("id"))
				}),
			},
			{
				Name:  "export",
				Usage: "Print an account's otpauth URI and QR code",
				Flags: []cli.Flag{
					userFlag(),
					&cli.StringFlag{Name: "id", Required: true, Usage: "Account ID"},
				},
				Action: withService(func(ctx context.Context, cmd *cli.Command, svc *account.Service) error {
					return commands.RunExportAccount(ctx, os.Stdout, svc, cmd.String("user"), cmd.String("id"))
				}),
			},
			{
				Name:  "ping",
				Usage: "Check the MongoDB connection",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var cfg mongo.Config
					if err := config.Load(&cfg); err != nil {
						return err
					}
					client, err := mongo.New(ctx, cfg)
					if err != nil {
						return err
					}
					defer func() {
						if err := client.Disconnect(context.Background()); err != nil {
							a.log.ErrorContext(ctx, "failed to disconnect from mongodb", logger.Error(err))
						}
					}()
					return commands.RunPing(ctx, os.Stdout, mongo.Healthcheck(client))
				},
			},
		},
	}
}
