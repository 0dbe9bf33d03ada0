package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

// versionCmd prints the build information, the same as the --version flag.
func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			cli.ShowVersion(cmd.Root())
			return nil
		},
	}
}
