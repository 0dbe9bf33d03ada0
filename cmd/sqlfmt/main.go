package main

import (
	"context"
	"os"

	"github.com/pseudomuto/sqlfmt/pkg/cmd"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(
			os.Args,
			&cmd.Version{Version: version, Commit: commit, Timestamp: date},
		),
		fx.Provide(func(lc fx.Lifecycle) context.Context {
			ctx, cancel := context.WithCancel(context.Background())
			lc.Append(fx.StopHook(cancel))
			return ctx
		}),
		config.Module,
		format.Module,
		cmd.Module,
	).Run()
}
