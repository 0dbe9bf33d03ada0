package format

import (
	"strings"

	"github.com/pseudomuto/sqlfmt/pkg/parser"
)

// condition lays out a boolean expression one term per line, with AND / OR leading the
// continuation lines.
func (f *Formatter) condition(expr *parser.Expression) block {
	var out block
	for i, and := range expr.Terms {
		for j, term := range and.Terms {
			prefix := ""
			switch {
			case j > 0:
				prefix = "AND "
			case i > 0:
				prefix = "OR "
			}

			out = append(out, cat(text(prefix), f.not(term))...)
		}
	}

	return out
}

// expression renders an expression inline. The result only spans several lines when the
// expression holds a subquery or CASE.
func (f *Formatter) expression(expr *parser.Expression) block {
	if expr == nil {
		return nil
	}

	ors := make([]block, 0, len(expr.Terms))
	for _, and := range expr.Terms {
		terms := make([]block, 0, len(and.Terms))
		for _, term := range and.Terms {
			terms = append(terms, f.not(term))
		}
		ors = append(ors, join(terms, " AND "))
	}

	return join(ors, " OR ")
}

func (f *Formatter) expressions(exprs []*parser.Expression) []block {
	out := make([]block, 0, len(exprs))
	for _, expr := range exprs {
		out = append(out, f.expression(expr))
	}

	return out
}

func (f *Formatter) not(n *parser.NotExpression) block {
	out := f.comparison(n.Comparison)
	if n.Not {
		return cat(text("NOT "), out)
	}

	return out
}

func (f *Formatter) comparison(c *parser.Comparison) block {
	out := f.additive(c.Left)
	if c.Predicate == nil {
		return out
	}

	p := c.Predicate
	switch {
	case p.Compare != nil:
		return cat(out, text(" "+p.Compare.Op+" "), f.additive(p.Compare.Right))
	case p.Is != nil:
		is := " IS "
		if p.Is.Not {
			is += "NOT "
		}
		return cat(out, text(is+keyword(p.Is.Value)))
	case p.Negatable != nil:
		return cat(out, f.negatable(p.Negatable))
	}

	return out
}

func (f *Formatter) negatable(n *parser.NegatablePredicate) block {
	not := " "
	if n.Not {
		not = " NOT "
	}

	switch {
	case n.In != nil && n.In.Query != nil:
		return cat(text(not+"IN "), f.paren(f.query(n.In.Query)))
	case n.In != nil:
		return cat(text(not+"IN ("), join(f.expressions(n.In.List), ", "), text(")"))
	case n.Between != nil:
		return cat(
			text(not+"BETWEEN "),
			f.additive(n.Between.Low),
			text(" AND "),
			f.additive(n.Between.High),
		)
	case n.Like != nil:
		return cat(text(not+keyword(n.Like.Op)+" "), f.additive(n.Like.Pattern))
	}

	return nil
}

func (f *Formatter) additive(a *parser.Additive) block {
	out := f.multiplicative(a.Left)
	for _, rest := range a.Rest {
		out = cat(out, text(" "+rest.Op+" "), f.multiplicative(rest.Right))
	}

	return out
}

func (f *Formatter) multiplicative(m *parser.Multiplicative) block {
	out := f.unary(m.Left)
	for _, rest := range m.Rest {
		out = cat(out, text(" "+rest.Op+" "), f.unary(rest.Right))
	}

	return out
}

func (f *Formatter) unary(u *parser.Unary) block {
	out := f.postfix(u.Operand)
	if u.Op != nil {
		return cat(text(*u.Op), out)
	}

	return out
}

func (f *Formatter) postfix(p *parser.Postfix) block {
	out := f.primary(p.Primary)
	for _, cast := range p.Casts {
		out = cat(out, text("::"+typeName(cast)))
	}

	return out
}

func (f *Formatter) primary(p *parser.Primary) block {
	switch {
	case p.Literal != nil:
		return text(literal(p.Literal))
	case p.Param != nil:
		return text(*p.Param)
	case p.Case != nil:
		return f.caseExpression(p.Case)
	case p.Cast != nil:
		return cat(text("CAST("), f.expression(p.Cast.Expr), text(" AS "+typeName(p.Cast.Type)+")"))
	case p.Exists != nil:
		return cat(text("EXISTS "), f.paren(f.query(p.Exists.Query)))
	case p.Function != nil:
		return f.function(p.Function)
	case p.Column != nil:
		return text(strings.Join(p.Column.Parts, "."))
	case p.Subquery != nil:
		return f.paren(f.query(p.Subquery))
	case p.Group != nil:
		return cat(text("("), join(f.expressions(p.Group.Items), ", "), text(")"))
	}

	return nil
}

func literal(l *parser.Literal) string {
	switch {
	case l.String != nil:
		return *l.String
	case l.Number != nil:
		return *l.Number
	case l.Boolean != nil:
		return keyword(*l.Boolean)
	default:
		return "NULL"
	}
}

func (f *Formatter) function(fn *parser.FunctionCall) block {
	out := text(fn.Name + "(")
	if fn.Distinct {
		out = cat(out, text("DISTINCT "))
	}

	if fn.Star {
		out = cat(out, text("*"))
	} else {
		out = cat(out, join(f.expressions(fn.Args), ", "))
	}

	out = cat(out, text(")"))
	if fn.Over != nil {
		out = cat(out, text(" OVER ("), f.window(fn.Over), text(")"))
	}

	return out
}

func (f *Formatter) window(w *parser.WindowSpec) block {
	var parts []block
	if len(w.PartitionBy) > 0 {
		parts = append(parts, cat(text("PARTITION BY "), join(f.expressions(w.PartitionBy), ", ")))
	}

	if len(w.OrderBy) > 0 {
		items := make([]block, 0, len(w.OrderBy))
		for _, item := range w.OrderBy {
			items = append(items, f.orderItem(item))
		}
		parts = append(parts, cat(text("ORDER BY "), join(items, ", ")))
	}

	return join(parts, " ")
}

func (f *Formatter) caseExpression(c *parser.CaseExpression) block {
	head := text("CASE")
	if c.Operand != nil {
		head = cat(head, text(" "), f.expression(c.Operand))
	}

	var body block
	for _, when := range c.Whens {
		body = append(body, cat(
			text("WHEN "),
			f.expression(when.Condition),
			text(" THEN "),
			f.expression(when.Result),
		)...)
	}

	if c.Else != nil {
		body = append(body, cat(text("ELSE "), f.expression(c.Else))...)
	}

	out := append(head, f.nest(body)...)
	return append(out, "END")
}

// typeName renders a data type with its original spelling.
func typeName(t *parser.TypeName) string {
	if t == nil {
		return ""
	}

	out := strings.Join(t.Names, " ")
	if len(t.Params) > 0 {
		out += "(" + strings.Join(t.Params, ", ") + ")"
	}

	return out
}
