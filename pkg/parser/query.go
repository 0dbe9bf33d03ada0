package parser

// This file contains the query structures: SELECT with CTEs, joins and compound operators

type (
	// Query represents a complete query: optional CTEs, one or more SELECT cores combined with
	// set operators, and the trailing ORDER BY / LIMIT / OFFSET that apply to the whole result.
	Query struct {
		With     *WithClause       `parser:"@@?"`
		Body     *SelectCore       `parser:"@@"`
		Compound []*CompoundSelect `parser:"@@*"`
		OrderBy  []*OrderItem      `parser:"('ORDER' 'BY' @@ (',' @@)*)?"`
		Limit    *Expression       `parser:"('LIMIT' @@)?"`
		Offset   *Expression       `parser:"('OFFSET' @@)?"`
	}

	// WithClause represents WITH [RECURSIVE] for CTEs
	WithClause struct {
		Recursive bool                     `parser:"'WITH' @'RECURSIVE'?"`
		CTEs      []*CommonTableExpression `parser:"@@ (',' @@)*"`
	}

	// CommonTableExpression represents a single CTE
	CommonTableExpression struct {
		Name    string   `parser:"@(Ident | QuotedIdent)"`
		Columns []string `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Query   *Query   `parser:"'AS' '(' @@ ')'"`
	}

	// SelectCore is a single SELECT without ORDER BY or LIMIT
	SelectCore struct {
		Distinct bool          `parser:"'SELECT' ( @'DISTINCT' | 'ALL' )?"`
		Items    []*SelectItem `parser:"@@ (',' @@)*"`
		From     *FromClause   `parser:"@@?"`
		Where    *Expression   `parser:"('WHERE' @@)?"`
		GroupBy  []*Expression `parser:"('GROUP' 'BY' @@ (',' @@)*)?"`
		Having   *Expression   `parser:"('HAVING' @@)?"`
	}

	// CompoundSelect represents UNION / INTERSECT / EXCEPT [ALL] followed by another SELECT
	CompoundSelect struct {
		Op     string      `parser:"@('UNION' | 'INTERSECT' | 'EXCEPT')"`
		All    bool        `parser:"@'ALL'?"`
		Select *SelectCore `parser:"@@"`
	}

	// SelectItem represents a column in a SELECT list or RETURNING clause
	SelectItem struct {
		Star  bool        `parser:"@'*'"`
		Expr  *Expression `parser:"| @@"`
		Alias *Alias      `parser:"@@?"`
	}

	// Alias represents `[AS] name`
	Alias struct {
		As   bool   `parser:"@'AS'?"`
		Name string `parser:"@(Ident | QuotedIdent)"`
	}

	// FromClause represents FROM with one or more comma separated sources
	FromClause struct {
		Items []*FromItem `parser:"'FROM' @@ (',' @@)*"`
	}

	// FromItem is a source followed by the joins hanging off it
	FromItem struct {
		Source *TableSource `parser:"@@"`
		Joins  []*JoinClause `parser:"@@*"`
	}

	// TableSource represents a table, a table function, or a subquery with an optional alias
	TableSource struct {
		Subquery *Query        `parser:"( '(' @@ ')'"`
		Function *FunctionCall `parser:"| @@"`
		Table    *TableName    `parser:"| @@ )"`
		Alias    *Alias        `parser:"@@?"`
	}

	// TableName represents a possibly qualified object name
	TableName struct {
		Parts []string `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent))*"`
	}

	// JoinClause represents JOIN operations
	JoinClause struct {
		Kind   *string      `parser:"@('INNER' | 'CROSS' | 'LEFT' | 'RIGHT' | 'FULL')?"`
		Outer  bool         `parser:"@'OUTER'? 'JOIN'"`
		Source *TableSource `parser:"@@"`
		On     *Expression  `parser:"( 'ON' @@"`
		Using  []string     `parser:"| 'USING' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')' )?"`
	}

	// OrderItem represents a single column in ORDER BY
	OrderItem struct {
		Expr      *Expression `parser:"@@"`
		Direction *string     `parser:"@('ASC' | 'DESC')?"`
		Nulls     *string     `parser:"('NULLS' @('FIRST' | 'LAST'))?"`
	}
)

// String returns the dotted form of the name.
func (t *TableName) String() string {
	if t == nil {
		return ""
	}

	out := ""
	for i, part := range t.Parts {
		if i > 0 {
			out += "."
		}
		out += part
	}

	return out
}
