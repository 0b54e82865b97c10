package cmd

import (
	"context"
	"log/slog"

	"github.com/pseudomuto/sqlstyle/pkg/server"
	"github.com/urfave/cli/v3"
)

// serveCmd runs the HTTP formatting service until the process is interrupted.
// The loaded style is the base that request overrides apply to.
func serveCmd(s *Settings) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the formatting API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "the listen address",
				DefaultText: "server.addr from the config, :8080",
			},
			&cli.StringSliceFlag{
				Name:  "cors-origin",
				Usage: "an allowed browser origin, may be repeated (default any)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			srv, err := server.New(serverOptions(s, cmd))
			if err != nil {
				return err
			}

			return srv.ListenAndServe(ctx)
		},
	}
}

func serverOptions(s *Settings, cmd *cli.Command) server.Options {
	opts := server.Options{
		Addr:        s.Config.Server.Addr,
		CORSOrigins: s.Config.Server.CORSOrigins,
		Style:       s.Config.Style,
		Logger:      slog.Default(),
	}

	if cmd.IsSet("addr") {
		opts.Addr = cmd.String("addr")
	}
	if cmd.IsSet("cors-origin") {
		opts.CORSOrigins = cmd.StringSlice("cors-origin")
	}

	return opts
}
