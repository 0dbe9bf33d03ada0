// Package cmd provides CLI commands for the sqlfmt tool.
//
// This package implements the command-line interface for sqlfmt. Every command
// is built from the same formatting capability; they differ in the front end
// that feeds it.
//
// # Available Commands
//
//   - edit: Open a terminal editor; the format key formats the buffer in place
//   - serve: Run the format bridge over stdin/stdout for external editor front ends
//   - fmt: Format SQL from stdin, a file, or a directory tree
//   - version: Print build information
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided
// to fx in the "commands" value group and registered under the root command
// by Run.
//
// # Global Options
//
// All commands support global flags:
//   - --dir, -d: Specify the working directory (defaults to current directory)
//   - --config, -c: Specify the configuration file (or SQLFMT_CONFIG)
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlfmt edit report.sql                     # Edit and format interactively
//	echo 'select 1' | sqlfmt fmt               # Format stdin
//	sqlfmt fmt -l -w db/                       # Rewrite and list changed files
//	sqlfmt serve --codec msgpack               # Serve msgpack frames on stdio
//
// # Error Reporting
//
// Commands return errors wrapped with github.com/pkg/errors; Run logs them
// with slog and exits non-zero. The editor and serve commands never report
// formatting failures to the user: those go to the diagnostic sink only.
package cmd
