package diag_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/config"
	. "github.com/pseudomuto/sqlfmt/pkg/diag"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		expected slog.Level
		wantErr  bool
	}{
		{name: "", expected: slog.LevelInfo},
		{name: "debug", expected: slog.LevelDebug},
		{name: "WARN", expected: slog.LevelWarn},
		{name: "error", expected: slog.LevelError},
		{name: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.name, func(t *testing.T) {
			level, err := ParseLevel(tt.name)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expected, level)
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("text to fallback", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := New(config.Log{Level: "warn", Format: "text"}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("dropped")
		logger.Warn("failed to format SQL", "bytes", 13)

		require.NotContains(t, buf.String(), "dropped")
		require.Contains(t, buf.String(), `level=WARN msg="failed to format SQL" bytes=13`)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		logger, closer, err := New(config.Log{Level: "info", Format: "json"}, &buf)
		require.NoError(t, err)
		defer closer.Close()

		logger.Info("hello")
		require.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("appends to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sqlfmt.log")
		require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o644))

		logger, closer, err := New(config.Log{Level: "info", File: path}, nil)
		require.NoError(t, err)

		logger.Info("appended")
		require.NoError(t, closer.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "existing\n")
		require.Contains(t, string(data), "msg=appended")
	})

	t.Run("invalid level", func(t *testing.T) {
		_, _, err := New(config.Log{Level: "loud"}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), `invalid log level "loud"`)
	})

	t.Run("unwritable file", func(t *testing.T) {
		_, _, err := New(config.Log{File: filepath.Join(t.TempDir(), "missing", "sqlfmt.log")}, nil)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to open log file")
	})
}
