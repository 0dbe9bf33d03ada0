package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

func (f *Formatter) query(q *parser.Query) block {
	if q == nil {
		return nil
	}

	var out block
	if q.With != nil {
		out = append(out, f.with(q.With)...)
	}

	out = append(out, f.selectCore(q.Body)...)
	for _, compound := range q.Compound {
		op := keyword(compound.Op)
		if compound.All {
			op += " ALL"
		}

		out = append(out, op)
		out = append(out, f.selectCore(compound.Select)...)
	}

	if len(q.OrderBy) > 0 {
		out = append(out, f.clause("ORDER BY", f.orderItems(q.OrderBy))...)
	}
	if q.Limit != nil {
		out = append(out, f.clause("LIMIT", f.expression(q.Limit))...)
	}
	if q.Offset != nil {
		out = append(out, f.clause("OFFSET", f.expression(q.Offset))...)
	}

	return out
}

func (f *Formatter) with(w *parser.WithClause) block {
	kw := "WITH"
	if w.Recursive {
		kw += " RECURSIVE"
	}

	ctes := make([]block, 0, len(w.CTEs))
	for _, cte := range w.CTEs {
		head := cte.Name
		if len(cte.Columns) > 0 {
			head += " (" + strings.Join(cte.Columns, ", ") + ")"
		}

		ctes = append(ctes, cat(text(head+" AS "), f.paren(f.query(cte.Query))))
	}

	return f.clause(kw, list(ctes))
}

func (f *Formatter) selectCore(s *parser.SelectCore) block {
	if s == nil {
		return nil
	}

	kw := "SELECT"
	if s.Distinct {
		kw += " DISTINCT"
	}

	out := f.clause(kw, list(f.selectItems(s.Items)))
	if s.From != nil {
		out = append(out, f.from(s.From)...)
	}
	if s.Where != nil {
		out = append(out, f.clause("WHERE", f.condition(s.Where))...)
	}
	if len(s.GroupBy) > 0 {
		out = append(out, f.clause("GROUP BY", list(f.expressions(s.GroupBy)))...)
	}
	if s.Having != nil {
		out = append(out, f.clause("HAVING", f.condition(s.Having))...)
	}

	return out
}

func (f *Formatter) selectItems(items []*parser.SelectItem) []block {
	out := make([]block, 0, len(items))
	for _, item := range items {
		if item.Star {
			out = append(out, text("*"))
			continue
		}

		out = append(out, cat(f.expression(item.Expr), alias(item.Alias)))
	}

	return out
}

func alias(a *parser.Alias) block {
	if a == nil {
		return nil
	}

	if a.As {
		return text(" AS " + a.Name)
	}

	return text(" " + a.Name)
}

func (f *Formatter) from(from *parser.FromClause) block {
	items := make([]block, 0, len(from.Items))
	for _, item := range from.Items {
		out := f.tableSource(item.Source)
		for _, join := range item.Joins {
			out = append(out, f.join(join)...)
		}
		items = append(items, out)
	}

	return f.clause("FROM", list(items))
}

func (f *Formatter) tableSource(src *parser.TableSource) block {
	var out block
	switch {
	case src.Subquery != nil:
		out = f.paren(f.query(src.Subquery))
	case src.Function != nil:
		out = f.function(src.Function)
	case src.Table != nil:
		out = text(src.Table.String())
	}

	return cat(out, alias(src.Alias))
}

func (f *Formatter) join(j *parser.JoinClause) block {
	kw := "JOIN"
	switch {
	case j.Kind != nil && j.Outer:
		kw = keyword(*j.Kind) + " OUTER JOIN"
	case j.Kind != nil:
		kw = keyword(*j.Kind) + " JOIN"
	case j.Outer:
		kw = "OUTER JOIN"
	}

	out := cat(text(kw+" "), f.tableSource(j.Source))
	switch {
	case j.On != nil:
		out = cat(out, text(" ON "), f.condition(j.On))
	case len(j.Using) > 0:
		out = cat(out, text(" USING ("+strings.Join(j.Using, ", ")+")"))
	}

	return out
}

func (f *Formatter) orderItems(items []*parser.OrderItem) block {
	out := make([]block, 0, len(items))
	for _, item := range items {
		out = append(out, f.orderItem(item))
	}

	return list(out)
}

func (f *Formatter) orderItem(item *parser.OrderItem) block {
	out := f.expression(item.Expr)
	if item.Direction != nil {
		out = cat(out, text(" "+keyword(*item.Direction)))
	}
	if item.Nulls != nil {
		out = cat(out, text(" NULLS "+keyword(*item.Nulls)))
	}

	return out
}
