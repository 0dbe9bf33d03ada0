package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
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
		Loader     *config.Loader
		Session    *Session
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}

	// Session holds what the root command resolves before any subcommand runs.
	Session struct {
		Config *config.Config
	}
)

// NewSession creates an empty Session. It is filled in by the root command's Before hook.
func NewSession() *Session {
	return &Session{}
}

// config returns the resolved configuration, or the defaults when nothing was loaded.
func (s *Session) config() *config.Config {
	if s == nil || s.Config == nil {
		return config.Defaults()
	}

	return s.Config
}

// Run registers the sqlfmt CLI application to be executed once the fx application starts.
//
// The application has these global flags:
//   - --dir, -d: the working directory (defaults to the current directory)
//   - --config, -c: an explicit configuration file (defaults to sqlfmt.yaml, sqlfmt.yml or
//     sqlfmt.toml in the working directory)
//
// The command runs on its own goroutine so that long-lived commands (edit, serve) are not subject
// to the start timeout. When it returns, the fx application is shut down with exit code 0, or 1 if
// the command failed.
//
// Example usage:
//
//	sqlfmt fmt -w queries/
//	sqlfmt --dir ./db --config sqlfmt.toml serve
//	sqlfmt edit report.sql
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "sqlfmt",
		Usage: "A SQL formatter with an interactive editor",
		Description: `sqlfmt formats SQL statements in a consistent, readable layout. It can
format files in batch, run as a format server for editor front ends, or
open a terminal editor where a key press formats the buffer.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the working directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfmt config file",
				Sources: cli.EnvVars("SQLFMT_CONFIG"),
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := os.Chdir(cmd.String("dir")); err != nil {
				return ctx, errors.Wrapf(err, "failed to change directory: %s", cmd.String("dir"))
			}

			cfg, err := p.Loader.Load(cmd.String("config"))
			if err != nil {
				return ctx, errors.Wrap(err, "failed to load config")
			}

			p.Session.Config = cfg
			return ctx, nil
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		go func() {
			code := 0
			if err := app.Run(p.Ctx, p.Args); err != nil {
				slog.Error("Error running command", "err", err)
				code = 1
			}

			_ = p.Shutdowner.Shutdown(fx.ExitCode(code))
		}()
	}))
}
