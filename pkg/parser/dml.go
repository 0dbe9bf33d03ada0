package parser

type (
	// InsertStmt represents INSERT INTO ... VALUES / SELECT
	InsertStmt struct {
		Table     *TableName        `parser:"'INSERT' 'INTO' @@"`
		Columns   []string          `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
		Values    []*ExpressionList `parser:"( 'VALUES' @@ (',' @@)*"`
		Query     *Query            `parser:"| @@ )"`
		Returning []*SelectItem     `parser:"('RETURNING' @@ (',' @@)*)?"`
	}

	// UpdateStmt represents UPDATE ... SET ... [FROM ...] [WHERE ...]
	UpdateStmt struct {
		Table       *TableName    `parser:"'UPDATE' @@"`
		Alias       *Alias        `parser:"@@?"`
		Assignments []*Assignment `parser:"'SET' @@ (',' @@)*"`
		From        *FromClause   `parser:"@@?"`
		Where       *Expression   `parser:"('WHERE' @@)?"`
		Returning   []*SelectItem `parser:"('RETURNING' @@ (',' @@)*)?"`
	}

	// Assignment represents column = value in a SET clause
	Assignment struct {
		Column *ColumnRef  `parser:"@@"`
		Value  *Expression `parser:"'=' @@"`
	}

	// DeleteStmt represents DELETE FROM ... [WHERE ...]
	DeleteStmt struct {
		Table     *TableName    `parser:"'DELETE' 'FROM' @@"`
		Alias     *Alias        `parser:"@@?"`
		Where     *Expression   `parser:"('WHERE' @@)?"`
		Returning []*SelectItem `parser:"('RETURNING' @@ (',' @@)*)?"`
	}
)
