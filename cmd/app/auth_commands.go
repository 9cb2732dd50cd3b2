package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/notes/cmd/app/commands"
	"github.com/allisson/notes/internal/app"
	"github.com/allisson/notes/internal/config"
)

func getAuthCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Register a new user",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Username of the new user",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Password of the new user (omit to read it from stdin)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				authUseCase, err := container.AuthUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					authUseCase,
					container.Logger(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "seal-secret",
			Usage: "Encrypt a token signing secret with a KMS key for use as SECRET_KEY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kms-key-uri",
					Aliases:  []string{"k"},
					Required: true,
					Usage:    "KMS key URI (gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://)",
				},
				&cli.StringFlag{
					Name:    "secret",
					Aliases: []string{"s"},
					Usage:   "Secret to seal (omit to read it from stdin)",
				},
				&cli.BoolFlag{
					Name:    "generate",
					Aliases: []string{"g"},
					Usage:   "Generate a random 32-byte secret instead of reading one",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				return commands.RunSealSecret(
					ctx,
					container.Logger(),
					cmd.String("kms-key-uri"),
					cmd.String("secret"),
					cmd.Bool("generate"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
