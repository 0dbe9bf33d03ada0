package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

func (f *Formatter) createTable(stmt *parser.CreateTableStmt) block {
	head := "CREATE TABLE "
	if stmt.IfNotExists {
		head += "IF NOT EXISTS "
	}

	elements := make([]block, 0, len(stmt.Elements))
	for _, el := range stmt.Elements {
		switch {
		case el.Column != nil:
			elements = append(elements, f.columnDef(el.Column))
		case el.Constraint != nil:
			elements = append(elements, f.tableConstraint(el.Constraint))
		}
	}

	out := append(block{head + stmt.Name.String() + " ("}, f.nest(list(elements))...)
	return append(out, ")")
}

func (f *Formatter) columnDef(col *parser.ColumnDef) block {
	out := text(col.Name + " " + typeName(col.Type))
	for _, c := range col.Constraints {
		out = cat(out, text(" "), f.columnConstraint(c))
	}

	return out
}

func (f *Formatter) columnConstraint(c *parser.ColumnConstraint) block {
	switch {
	case c.NotNull:
		return text("NOT NULL")
	case c.Null:
		return text("NULL")
	case c.PrimaryKey:
		return text("PRIMARY KEY")
	case c.Unique:
		return text("UNIQUE")
	case c.Default != nil:
		return cat(text("DEFAULT "), f.unary(c.Default))
	case c.References != nil:
		return text(reference(c.References))
	case c.Check != nil:
		return cat(text("CHECK ("), f.expression(c.Check), text(")"))
	}

	return nil
}

func (f *Formatter) tableConstraint(c *parser.TableConstraint) block {
	var out block
	if c.Name != nil {
		out = text("CONSTRAINT " + *c.Name + " ")
	}

	switch {
	case len(c.PrimaryKey) > 0:
		out = cat(out, text("PRIMARY KEY ("+strings.Join(c.PrimaryKey, ", ")+")"))
	case len(c.Unique) > 0:
		out = cat(out, text("UNIQUE ("+strings.Join(c.Unique, ", ")+")"))
	case c.ForeignKey != nil:
		out = cat(out, text(
			"FOREIGN KEY ("+strings.Join(c.ForeignKey.Columns, ", ")+") "+reference(c.ForeignKey.References),
		))
	case c.Check != nil:
		out = cat(out, text("CHECK ("), f.expression(c.Check), text(")"))
	}

	return out
}

func reference(r *parser.Reference) string {
	out := "REFERENCES " + r.Table.String()
	if len(r.Columns) > 0 {
		out += " (" + strings.Join(r.Columns, ", ") + ")"
	}

	return out
}

func (f *Formatter) createView(stmt *parser.CreateViewStmt) block {
	head := "CREATE "
	if stmt.OrReplace {
		head += "OR REPLACE "
	}

	out := block{head + "VIEW " + stmt.Name.String() + " AS"}
	return append(out, f.query(stmt.Query)...)
}

func (f *Formatter) drop(stmt *parser.DropStmt) block {
	head := "DROP " + keyword(stmt.Kind) + " "
	if stmt.IfExists {
		head += "IF EXISTS "
	}

	names := make([]string, 0, len(stmt.Names))
	for _, name := range stmt.Names {
		names = append(names, name.String())
	}

	out := head + strings.Join(names, ", ")
	if stmt.Cascade {
		out += " CASCADE"
	}

	return text(out)
}
