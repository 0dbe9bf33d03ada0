package parser

type (
	// CreateTableStmt represents CREATE TABLE [IF NOT EXISTS] name (elements)
	CreateTableStmt struct {
		IfNotExists bool            `parser:"'CREATE' 'TABLE' @('IF' 'NOT' 'EXISTS')?"`
		Name        *TableName      `parser:"@@"`
		Elements    []*TableElement `parser:"'(' @@ (',' @@)* ')'"`
	}

	// TableElement is either a table constraint or a column definition
	TableElement struct {
		Constraint *TableConstraint `parser:"@@"`
		Column     *ColumnDef       `parser:"| @@"`
	}

	// TableConstraint represents [CONSTRAINT name] PRIMARY KEY / UNIQUE / FOREIGN KEY / CHECK
	TableConstraint struct {
		Name       *string     `parser:"('CONSTRAINT' @(Ident | QuotedIdent))?"`
		PrimaryKey []string    `parser:"( 'PRIMARY' 'KEY' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		Unique     []string    `parser:"| 'UNIQUE' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		ForeignKey *ForeignKey `parser:"| @@"`
		Check      *Expression `parser:"| 'CHECK' '(' @@ ')' )"`
	}

	// ForeignKey represents FOREIGN KEY (cols) REFERENCES table (cols)
	ForeignKey struct {
		Columns    []string   `parser:"'FOREIGN' 'KEY' '(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')'"`
		References *Reference `parser:"@@"`
	}

	// Reference represents REFERENCES table [(cols)]
	Reference struct {
		Table   *TableName `parser:"'REFERENCES' @@"`
		Columns []string   `parser:"('(' @(Ident | QuotedIdent) (',' @(Ident | QuotedIdent))* ')')?"`
	}

	// ColumnDef represents a single column definition
	ColumnDef struct {
		Name        string              `parser:"@(Ident | QuotedIdent)"`
		Type        *TypeName           `parser:"@@"`
		Constraints []*ColumnConstraint `parser:"@@*"`
	}

	// ColumnConstraint represents the inline constraints of a column
	ColumnConstraint struct {
		NotNull    bool        `parser:"@('NOT' 'NULL')"`
		Null       bool        `parser:"| @'NULL'"`
		PrimaryKey bool        `parser:"| @('PRIMARY' 'KEY')"`
		Unique     bool        `parser:"| @'UNIQUE'"`
		Default    *Unary      `parser:"| 'DEFAULT' @@"`
		References *Reference  `parser:"| @@"`
		Check      *Expression `parser:"| 'CHECK' '(' @@ ')'"`
	}

	// TypeName represents a data type such as `integer`, `varchar(255)` or `double precision`
	TypeName struct {
		Names  []string `parser:"@Ident+"`
		Params []string `parser:"('(' @Number (',' @Number)* ')')?"`
	}

	// CreateViewStmt represents CREATE [OR REPLACE] VIEW name AS query
	CreateViewStmt struct {
		OrReplace bool       `parser:"'CREATE' @('OR' 'REPLACE')? 'VIEW'"`
		Name      *TableName `parser:"@@"`
		Query     *Query     `parser:"'AS' @@"`
	}

	// DropStmt represents DROP TABLE | VIEW [IF EXISTS] names [CASCADE]
	DropStmt struct {
		Kind     string       `parser:"'DROP' @('TABLE' | 'VIEW')"`
		IfExists bool         `parser:"@('IF' 'EXISTS')?"`
		Names    []*TableName `parser:"@@ (',' @@)*"`
		Cascade  bool         `parser:"@'CASCADE'?"`
	}
)
