package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfmt/pkg/consts"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runFmt runs the fmt command inside a minimal root command.
func runFmt(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	command := fmtCmd()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Reader: strings.NewReader(stdin),
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func writeSQL(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), consts.ModeDir))
	require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))
}

func TestFmtCommand_MultipleArguments(t *testing.T) {
	_, err := runFmt(t, "", "a.sql", "b.sql")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_Stdin(t *testing.T) {
	t.Run("no arguments reads stdin", func(t *testing.T) {
		output, err := runFmt(t, "select * from t")
		require.NoError(t, err)
		require.Equal(t, "SELECT\n  *\nFROM\n  t\n", output)
	})

	t.Run("dash reads stdin", func(t *testing.T) {
		output, err := runFmt(t, "select a, b from t where a = 1 and b = 2;", "-")
		require.NoError(t, err)
		require.Equal(t, "SELECT\n  a,\n  b\nFROM\n  t\nWHERE\n  a = 1\n  AND b = 2;\n", output)
	})

	t.Run("empty input", func(t *testing.T) {
		output, err := runFmt(t, "   \n")
		require.NoError(t, err)
		require.Empty(t, output)
	})

	t.Run("write back is rejected", func(t *testing.T) {
		_, err := runFmt(t, "select 1", "-w", "-")
		require.Error(t, err)
		require.Contains(t, err.Error(), "cannot use -w with standard input")
	})

	t.Run("invalid SQL is reported", func(t *testing.T) {
		output, err := runFmt(t, "select * from", "-")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to format SQL in file: -")
		require.Empty(t, output)
	})
}

func TestFmtCommand_SingleFile(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "test.sql")
	writeSQL(t, sqlFile, "select id,name from users;delete from sessions;")

	output, err := runFmt(t, "", sqlFile)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  id,\n  name\nFROM\n  users;\n\nDELETE FROM\n  sessions;\n", output)

	// Source file is untouched
	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "select id,name from users;delete from sessions;", string(content))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "test.sql")
	writeSQL(t, sqlFile, "select * from t")

	output, err := runFmt(t, "", "-w", sqlFile)
	require.NoError(t, err)
	require.Empty(t, output)

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  *\nFROM\n  t\n", string(content))
}

func TestFmtCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()
	writeSQL(t, filepath.Join(tmpDir, "b.sql"), "select 2")
	writeSQL(t, filepath.Join(tmpDir, "a.sql"), "select 1")
	writeSQL(t, filepath.Join(tmpDir, "nested", "c.sql"), "select 3")
	writeSQL(t, filepath.Join(tmpDir, "notes.txt"), "not sql")

	output, err := runFmt(t, "", tmpDir)
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  1\nSELECT\n  2\nSELECT\n  3\n", output)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	tmpDir := t.TempDir()
	files := map[string]string{
		filepath.Join(tmpDir, "a.sql"):           "select 1",
		filepath.Join(tmpDir, "nested", "b.sql"): "drop table if exists t",
	}
	for path, content := range files {
		writeSQL(t, path, content)
	}

	_, err := runFmt(t, "", "-w", tmpDir)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(tmpDir, "a.sql"))
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  1\n", string(content))

	content, err = os.ReadFile(filepath.Join(tmpDir, "nested", "b.sql"))
	require.NoError(t, err)
	require.Equal(t, "DROP TABLE IF EXISTS t\n", string(content))
}

func TestFmtCommand_List(t *testing.T) {
	tmpDir := t.TempDir()
	formatted := filepath.Join(tmpDir, "formatted.sql")
	unformatted := filepath.Join(tmpDir, "unformatted.sql")
	writeSQL(t, formatted, "SELECT\n  1\n")
	writeSQL(t, unformatted, "select 1")

	t.Run("list only", func(t *testing.T) {
		output, err := runFmt(t, "", "-l", tmpDir)
		require.NoError(t, err)
		require.Equal(t, unformatted+"\n", output)

		content, err := os.ReadFile(unformatted)
		require.NoError(t, err)
		require.Equal(t, "select 1", string(content))
	})

	t.Run("list and write", func(t *testing.T) {
		output, err := runFmt(t, "", "-l", "-w", tmpDir)
		require.NoError(t, err)
		require.Equal(t, unformatted+"\n", output)

		content, err := os.ReadFile(unformatted)
		require.NoError(t, err)
		require.Equal(t, "SELECT\n  1\n", string(content))

		output, err = runFmt(t, "", "-l", tmpDir)
		require.NoError(t, err)
		require.Empty(t, output)
	})
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	_, err := runFmt(t, "", "/nonexistent/path.sql")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_InvalidSQL(t *testing.T) {
	tmpDir := t.TempDir()
	writeSQL(t, filepath.Join(tmpDir, "good.sql"), "select 1")
	writeSQL(t, filepath.Join(tmpDir, "bad.sql"), "select * from")

	output, err := runFmt(t, "", "-w", tmpDir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to format SQL in file")
	require.Contains(t, err.Error(), "bad.sql")
	require.Empty(t, output)

	// Nothing is written when any file fails
	content, err := os.ReadFile(filepath.Join(tmpDir, "good.sql"))
	require.NoError(t, err)
	require.Equal(t, "select 1", string(content))
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	_, err := runFmt(t, "", t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), "no SQL files found in directory")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "empty.sql")
	writeSQL(t, sqlFile, "")

	output, err := runFmt(t, "", sqlFile)
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestFmtCommand_PreservesComments(t *testing.T) {
	sqlFile := filepath.Join(t.TempDir(), "comments.sql")
	writeSQL(t, sqlFile, "-- users\nselect * from users;\n-- done\n")

	output, err := runFmt(t, "", sqlFile)
	require.NoError(t, err)
	require.Equal(t, "-- users\nSELECT\n  *\nFROM\n  users;\n\n-- done\n", output)
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd()
	require.Equal(t, "fmt", command.Name)
	require.Len(t, command.Flags, 2)

	names := make([]string, 0, len(command.Flags))
	for _, flag := range command.Flags {
		names = append(names, flag.Names()...)
	}
	require.ElementsMatch(t, []string{"write", "w", "list", "l"}, names)
}
