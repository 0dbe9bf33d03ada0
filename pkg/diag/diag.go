// Package diag builds the diagnostic sink: the structured logger that records failures nobody
// shows to the user, such as a format request that could not be parsed.
package diag

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/config"
	"github.com/pseudomuto/sqlfmt/pkg/consts"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New creates a logger from cfg. Records go to cfg.File when set (appending), otherwise to
// fallback. The returned closer releases the file and must be called once the logger is no
// longer used.
func New(cfg config.Log, fallback io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w      = fallback
		closer io.Closer = nopCloser{}
	)

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, consts.ModeFile)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file: %s", cfg.File)
		}

		w, closer = f, f
	}

	if w == nil {
		w = io.Discard
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), closer, nil
}

// ParseLevel converts a configured level name into a slog.Level. An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, errors.Wrapf(err, "invalid log level %q", name)
	}

	return level, nil
}
