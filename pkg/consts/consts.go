// Package consts holds values shared by the sqlfmt packages.
package consts

import "os"

const (
	// ModeDir is used for directories that hold SQL files.
	ModeDir = os.FileMode(0o755)

	// ModeFile is used for rewritten SQL files, saved editor buffers and log files.
	ModeFile = os.FileMode(0o644)
)
