package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

func (f *Formatter) insert(stmt *parser.InsertStmt) block {
	target := stmt.Table.String()
	if len(stmt.Columns) > 0 {
		target += " (" + strings.Join(stmt.Columns, ", ") + ")"
	}

	out := f.clause("INSERT INTO", text(target))
	if stmt.Query != nil {
		out = append(out, f.query(stmt.Query)...)
	} else {
		rows := make([]block, 0, len(stmt.Values))
		for _, row := range stmt.Values {
			rows = append(rows, cat(text("("), join(f.expressions(row.Items), ", "), text(")")))
		}
		out = append(out, f.clause("VALUES", list(rows))...)
	}

	return append(out, f.returning(stmt.Returning)...)
}

func (f *Formatter) update(stmt *parser.UpdateStmt) block {
	out := f.clause("UPDATE", cat(text(stmt.Table.String()), alias(stmt.Alias)))

	assignments := make([]block, 0, len(stmt.Assignments))
	for _, a := range stmt.Assignments {
		assignments = append(assignments, cat(
			text(strings.Join(a.Column.Parts, ".")+" = "),
			f.expression(a.Value),
		))
	}
	out = append(out, f.clause("SET", list(assignments))...)

	if stmt.From != nil {
		out = append(out, f.from(stmt.From)...)
	}
	if stmt.Where != nil {
		out = append(out, f.clause("WHERE", f.condition(stmt.Where))...)
	}

	return append(out, f.returning(stmt.Returning)...)
}

func (f *Formatter) delete(stmt *parser.DeleteStmt) block {
	out := f.clause("DELETE FROM", cat(text(stmt.Table.String()), alias(stmt.Alias)))
	if stmt.Where != nil {
		out = append(out, f.clause("WHERE", f.condition(stmt.Where))...)
	}

	return append(out, f.returning(stmt.Returning)...)
}

func (f *Formatter) returning(items []*parser.SelectItem) block {
	if len(items) == 0 {
		return nil
	}

	return f.clause("RETURNING", list(f.selectItems(items)))
}
