// Command authenticator manages TOTP accounts and the key that protects their secrets.
package main

import (
	"context"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/authenticator/cmd/authenticator/commands"
	"github.com/dmitrymomot/authenticator/pkg/logger"
	"github.com/dmitrymomot/authenticator/pkg/secrets"
	"github.com/dmitrymomot/authenticator/pkg/totp"
)

func main() {
	a := newApp()

	cmd := &cli.Command{
		Name:  serviceName,
		Usage: "TOTP code generator with encrypted secret storage",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Load environment variables from this file, repeatable; earlier files win",
			},
		},
		Before: a.setup,
		Commands: []*cli.Command{
			{
				Name:  "keygen",
				Usage: "Generate a random passphrase for ENCRYPTION_KEY",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeygen(os.Stdout)
				},
			},
			{
				Name:  "secret",
				Usage: "Generate a random Base32 TOTP secret",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunNewSecret(os.Stdout)
				},
			},
			{
				Name:  "code",
				Usage: "Print the current code for a Base32 secret",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "secret",
						Aliases:  []string{"s"},
						Required: true,
						Usage:    "Base32 secret, spaces and case are ignored",
					},
					&cli.IntFlag{
						Name:    "period",
						Aliases: []string{"p"},
						Value:   totp.DefaultPeriod,
						Usage:   "Time step in seconds",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunCode(os.Stdout, cmd.String("secret"), cmd.Int("period"), time.Now())
				},
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt text with ENCRYPTION_KEY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "text",
						Aliases:  []string{"t"},
						Required: true,
						Usage:    "Plaintext to encrypt",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cipher, err := secrets.Default()
					if err != nil {
						return err
					}
					return commands.RunEncrypt(os.Stdout, cipher, cmd.String("text"))
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt an envelope produced with ENCRYPTION_KEY",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "envelope",
						Aliases:  []string{"e"},
						Required: true,
						Usage:    "Envelope in nonce:ciphertext:tag hex form",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cipher, err := secrets.Default()
					if err != nil {
						return err
					}
					return commands.RunDecrypt(os.Stdout, cipher, cmd.String("envelope"))
				},
			},
			a.accountCommands(),
		},
	}
	a.track(cmd.Commands)

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		a.log.Error("application error", logger.Error(err))
		os.Exit(1)
	}
}
