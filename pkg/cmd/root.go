package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlstyle/pkg/config"
	"github.com/pseudomuto/sqlstyle/pkg/style"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
		Loader     *config.Loader
		Settings   *Settings
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// Settings is filled in by the root command before any subcommand runs.
	Settings struct {
		Config *config.Config
	}
)

// Run registers the CLI application with the fx lifecycle. The application
// runs once the fx app has started and shuts it down when it returns, with
// exit code 1 on error.
//
// Global Flags:
//   - --config, -c: style file (env SQLSTYLE_CONFIG, defaults to sqlstyle.yaml when present)
//   - --dialect: keyword dialect, overriding the file
//   - --case: keyword case, overriding the file
//   - --log-level: debug, info, warn or error
//
// Example usage:
//
//	sqlstyle fmt -w queries/
//	sqlstyle --dialect postgres --case lower fmt < report.sql
//	sqlstyle serve --addr :9000
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p)
	ctx, cancel := context.WithCancel(p.Ctx)
	done := make(chan struct{})

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)

				code := 0
				if err := app.Run(ctx, p.Args); err != nil {
					slog.Error("Error running command", "err", err)
					code = 1
				}

				_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
}

func newApp(p Params) *cli.Command {
	return &cli.Command{
		Name:  "sqlstyle",
		Usage: "Format SQL",
		Description: `sqlstyle lays out SQL queries and scripts according to a configurable
style. It never rejects input: irregular SQL is formatted on a best-effort
basis and reported as diagnostics.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "the style config file",
				Sources:     cli.EnvVars("SQLSTYLE_CONFIG"),
				DefaultText: "sqlstyle.yaml when present",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "the keyword dialect (see the dialects command)",
			},
			&cli.StringFlag{
				Name:  "case",
				Usage: "keyword case: unchanged, lower, capitalize or upper",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(cmd.String("log-level"), cmd.Root().ErrWriter); err != nil {
				return ctx, err
			}

			cfg, err := p.Loader.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			if cmd.IsSet("dialect") {
				cfg.Style.Dialect = cmd.String("dialect")
			}
			if cmd.IsSet("case") {
				c, err := style.ParseCase(cmd.String("case"))
				if err != nil {
					return ctx, errors.Wrap(err, "invalid --case")
				}
				cfg.Style.Case = c
			}

			if err := cfg.Style.Validate(); err != nil {
				return ctx, err
			}

			slog.Debug("Loaded style", "dialect", cfg.Style.Dialect, "case", cfg.Style.Case)
			p.Settings.Config = cfg
			return ctx, nil
		},
		Commands: p.Commands,
	}
}

func setupLogging(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return errors.Wrapf(err, "invalid log level: %s", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})))
	return nil
}
