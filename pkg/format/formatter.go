package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

const indentUnit = "  "

// Formatter renders parsed SQL in the canonical layout.
type Formatter struct {
	indent string
}

// New creates a Formatter.
func New() *Formatter {
	return &Formatter{indent: indentUnit}
}

// Format writes every statement of the script to w.
//
// Statements are separated by a blank line. Comments that preceded a statement in the source are
// written on the lines above it, and comments after the last statement close the output.
func (f *Formatter) Format(w io.Writer, sql *parser.SQL) error {
	if sql == nil {
		return nil
	}

	chunks := make([]string, 0, len(sql.Statements)+1)
	for i, stmt := range sql.Statements {
		var sb strings.Builder
		for _, comment := range sql.LeadingComments(i) {
			sb.WriteString(comment)
			sb.WriteByte('\n')
		}

		sb.WriteString(f.Statement(stmt))
		chunks = append(chunks, sb.String())
	}

	if trailing := sql.TrailingComments(); len(trailing) > 0 {
		chunks = append(chunks, strings.Join(trailing, "\n"))
	}

	_, err := io.WriteString(w, strings.Join(chunks, "\n\n"))
	return errors.Wrap(err, "failed to write formatted SQL")
}

// Statement formats a single statement, including its `;` when the source had one.
func (f *Formatter) Statement(stmt *parser.Statement) string {
	if stmt == nil {
		return ""
	}

	var out block
	switch {
	case stmt.Select != nil:
		out = f.query(stmt.Select)
	case stmt.Insert != nil:
		out = f.insert(stmt.Insert)
	case stmt.Update != nil:
		out = f.update(stmt.Update)
	case stmt.Delete != nil:
		out = f.delete(stmt.Delete)
	case stmt.CreateTable != nil:
		out = f.createTable(stmt.CreateTable)
	case stmt.CreateView != nil:
		out = f.createView(stmt.CreateView)
	case stmt.Drop != nil:
		out = f.drop(stmt.Drop)
	default:
		return ""
	}

	if stmt.Terminated {
		out = cat(out, text(";"))
	}

	return out.String()
}

// keyword normalizes a keyword captured from the source.
func keyword(kw string) string {
	return strings.ToUpper(kw)
}

// clause renders a clause keyword on its own line followed by its indented body.
func (f *Formatter) clause(kw string, body block) block {
	return append(block{kw}, f.nest(body)...)
}

// paren wraps a multi-line body in an indented parenthesised block.
func (f *Formatter) paren(body block) block {
	out := append(block{"("}, f.nest(body)...)
	return append(out, ")")
}
