package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// Source parses and formats a complete SQL source text.
//
// Empty or whitespace-only input formats to the empty string. Any failure, including an internal
// fault while rendering, is returned as *Error; Source never panics.
//
// Example:
//
//	out, err := format.Source("select * from t")
//	// out == "SELECT\n  *\nFROM\n  t"
func Source(source string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = "", faultError(r)
		}
	}()

	if strings.TrimSpace(source) == "" {
		return "", nil
	}

	sql, perr := parser.ParseString(source)
	if perr != nil {
		return "", newError(perr)
	}

	var sb strings.Builder
	if ferr := New().Format(&sb, sql); ferr != nil {
		return "", newError(ferr)
	}

	return sb.String(), nil
}
