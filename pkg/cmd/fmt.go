package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/pseudomuto/sqlfmt/pkg/format"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

const stdinPath = "-"

type (
	fmtOptions struct {
		writeBack bool
		list      bool
		out       io.Writer
	}

	// formatted is the outcome of formatting one file.
	formatted struct {
		path    string
		content string
		changed bool
	}
)

// fmtCmd creates a CLI command for formatting SQL files.
// This command provides gofmt-like functionality for SQL files, allowing users
// to format standard input, individual files or entire directory trees recursively.
//
// The command supports these output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//   - List mode (-l flag): Names of files whose formatting differs are printed
//
// Path handling:
//   - No path or "-": Read SQL from standard input (which must not be a terminal)
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files, in lexical order
//
// Unlike the editor, batch formatting reports invalid SQL as an error and exits non-zero.
//
// Examples:
//
//	# Format single file to stdout
//	sqlfmt fmt query.sql
//
//	# Format standard input
//	echo "select * from t" | sqlfmt fmt
//
//	# List files that need formatting
//	sqlfmt fmt -l db/
//
//	# Format all SQL files in directory tree in-place
//	sqlfmt fmt -w db/
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path|-]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("exactly one path argument is required")
			}

			opts := fmtOptions{
				writeBack: cmd.Bool("write"),
				list:      cmd.Bool("list"),
				out:       cmd.Root().Writer,
			}

			path := cmd.Args().First()
			if path == "" || path == stdinPath {
				in := cmd.Root().Reader
				if path == "" && isTerminal(in) {
					return errors.New("exactly one path argument is required")
				}

				return formatStdin(in, opts)
			}

			return formatPath(ctx, path, opts)
		},
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func formatStdin(in io.Reader, opts fmtOptions) error {
	if opts.writeBack {
		return errors.New("cannot use -w with standard input")
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read standard input")
	}

	result, err := formatContent(stdinPath, content)
	if err != nil {
		return err
	}

	return report(result, opts)
}

// formatPath handles formatting of either a single file or directory recursively.
// It determines the input type (file vs directory) and dispatches to the appropriate
// formatting function.
func formatPath(ctx context.Context, path string, opts fmtOptions) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return formatDirectory(ctx, path, opts)
	}

	result, err := formatFile(path)
	if err != nil {
		return err
	}

	return report(result, opts)
}

// formatDirectory recursively walks through a directory and formats all .sql files.
// Files are formatted concurrently but reported in lexicographical order.
func formatDirectory(ctx context.Context, dir string, opts fmtOptions) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	results := make([]*formatted, len(sqlFiles))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sqlFile := range sqlFiles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := formatFile(sqlFile)
			if err != nil {
				return err
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		if err := report(result, opts); err != nil {
			return err
		}
	}

	return nil
}

// formatFile reads and formats a single SQL file.
func formatFile(path string) (*formatted, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s", path)
	}

	return formatContent(path, content)
}

// formatContent formats SQL source. Non-empty output always ends with a newline.
func formatContent(path string, content []byte) (*formatted, error) {
	out, err := format.Source(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	if out != "" {
		out += "\n"
	}

	return &formatted{
		path:    path,
		content: out,
		changed: !bytes.Equal(content, []byte(out)),
	}, nil
}

// report writes back, lists or prints a formatted file according to opts.
func report(result *formatted, opts fmtOptions) error {
	if opts.list && result.changed {
		if _, err := color.New(color.FgYellow).Fprintln(opts.out, result.path); err != nil {
			return errors.Wrap(err, "failed to write file list")
		}
	}

	if opts.writeBack {
		if !result.changed {
			return nil
		}

		if err := os.WriteFile(result.path, []byte(result.content), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", result.path)
		}

		return nil
	}

	if opts.list {
		return nil
	}

	if _, err := fmt.Fprint(opts.out, result.content); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}
