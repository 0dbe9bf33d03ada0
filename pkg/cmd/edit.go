package cmd

import (
	"context"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/bridge"
	"github.com/pseudomuto/sqlfmt/pkg/diag"
	"github.com/pseudomuto/sqlfmt/pkg/editor"
	"github.com/pseudomuto/sqlfmt/pkg/port"
	"github.com/urfave/cli/v3"
)

// defaultEditLog is where the editor records diagnostics when log.file is not configured. It
// never writes to the terminal it is drawing on.
var defaultEditLog = filepath.Join(os.TempDir(), "sqlfmt.log")

// editCmd creates a CLI command that opens the terminal editor.
//
// The editor formats its buffer through the bridge when the format key (ctrl+f unless
// editor.format_key says otherwise) is pressed. Invalid SQL leaves the buffer untouched.
//
// Examples:
//
//	# scratch buffer
//	sqlfmt edit
//
//	# edit a file (created on first save when missing)
//	sqlfmt edit report.sql
func editCmd(s *Session, formatter bridge.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Open the interactive SQL editor",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one file can be edited")
			}

			cfg := s.config()
			path := cmd.Args().First()

			content, err := loadBuffer(path)
			if err != nil {
				return err
			}

			logCfg := cfg.Log
			if logCfg.File == "" {
				logCfg.File = defaultEditLog
			}

			logger, closer, err := diag.New(logCfg, nil)
			if err != nil {
				return errors.Wrap(err, "failed to create logger")
			}
			defer func() { _ = closer.Close() }()

			requests, results := port.NewRequests(), port.NewMailbox()
			bridge.New(bridge.Params{
				Inbound:   requests,
				Outbound:  results,
				Formatter: formatter,
				Logger:    logger,
			})

			model := editor.New(editor.Params{
				Config:   cfg.Editor,
				Path:     path,
				Content:  content,
				Requests: requests,
				Results:  results,
			})

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return errors.Wrap(err, "editor failed")
			}

			return nil
		},
	}
}

// loadBuffer returns the content of path. A missing file, or no path at all, yields an empty
// buffer.
func loadBuffer(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", errors.Wrapf(err, "failed to read file: %s", path)
	}

	return string(data), nil
}
