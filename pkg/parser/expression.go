package parser

type (
	// Expression represents any SQL expression with proper precedence handling
	// Precedence levels (lowest to highest):
	// 1. OR
	// 2. AND
	// 3. NOT
	// 4. Comparison (=, <>, <, >, <=, >=, IS, IN, BETWEEN, LIKE)
	// 5. Addition/Subtraction/Concatenation (+, -, ||)
	// 6. Multiplication/Division/Modulo (*, /, %)
	// 7. Unary (+, -)
	// 8. Postfix casts (::type)
	// 9. Primary (literals, identifiers, functions, CASE, subqueries, parentheses)
	Expression struct {
		Terms []*AndExpression `parser:"@@ ('OR' @@)*"`
	}

	// AndExpression handles AND operations
	AndExpression struct {
		Terms []*NotExpression `parser:"@@ ('AND' @@)*"`
	}

	// NotExpression handles NOT operations
	NotExpression struct {
		Not        bool        `parser:"@'NOT'?"`
		Comparison *Comparison `parser:"@@"`
	}

	// Comparison is an additive expression with an optional predicate
	Comparison struct {
		Left      *Additive  `parser:"@@"`
		Predicate *Predicate `parser:"@@?"`
	}

	Predicate struct {
		Compare   *ComparePredicate   `parser:"@@"`
		Is        *IsPredicate        `parser:"| @@"`
		Negatable *NegatablePredicate `parser:"| @@"`
	}

	// ComparePredicate handles the binary comparison operators
	ComparePredicate struct {
		Op    string    `parser:"@('=' | '<>' | '!=' | '<=' | '>=' | '<' | '>')"`
		Right *Additive `parser:"@@"`
	}

	// IsPredicate handles IS [NOT] NULL / TRUE / FALSE
	IsPredicate struct {
		Not   bool   `parser:"'IS' @'NOT'?"`
		Value string `parser:"@('NULL' | 'TRUE' | 'FALSE')"`
	}

	// NegatablePredicate handles the predicates that accept a leading NOT
	NegatablePredicate struct {
		Not     bool              `parser:"@'NOT'?"`
		In      *InPredicate      `parser:"( @@"`
		Between *BetweenPredicate `parser:"| @@"`
		Like    *LikePredicate    `parser:"| @@ )"`
	}

	// InPredicate handles IN with a list or a subquery
	InPredicate struct {
		Query *Query        `parser:"'IN' '(' ( @@"`
		List  []*Expression `parser:"| @@ (',' @@)* ) ')'"`
	}

	// BetweenPredicate handles BETWEEN low AND high
	BetweenPredicate struct {
		Low  *Additive `parser:"'BETWEEN' @@"`
		High *Additive `parser:"'AND' @@"`
	}

	// LikePredicate handles LIKE and ILIKE
	LikePredicate struct {
		Op      string    `parser:"@('LIKE' | 'ILIKE')"`
		Pattern *Additive `parser:"@@"`
	}

	// Additive handles addition, subtraction and string concatenation
	Additive struct {
		Left *Multiplicative `parser:"@@"`
		Rest []*AdditiveRest `parser:"@@*"`
	}

	AdditiveRest struct {
		Op    string          `parser:"@('+' | '-' | '||')"`
		Right *Multiplicative `parser:"@@"`
	}

	// Multiplicative handles multiplication, division, and modulo
	Multiplicative struct {
		Left *Unary                `parser:"@@"`
		Rest []*MultiplicativeRest `parser:"@@*"`
	}

	MultiplicativeRest struct {
		Op    string `parser:"@('*' | '/' | '%')"`
		Right *Unary `parser:"@@"`
	}

	// Unary handles unary operators
	Unary struct {
		Op      *string  `parser:"@('-' | '+')?"`
		Operand *Postfix `parser:"@@"`
	}

	// Postfix handles PostgreSQL style `::type` casts
	Postfix struct {
		Primary *Primary    `parser:"@@"`
		Casts   []*TypeName `parser:"('::' @@)*"`
	}

	// Primary represents the highest precedence expressions
	Primary struct {
		Literal  *Literal          `parser:"@@"`
		Param    *string           `parser:"| @Param"`
		Case     *CaseExpression   `parser:"| @@"`
		Cast     *CastExpression   `parser:"| @@"`
		Exists   *ExistsExpression `parser:"| @@"`
		Function *FunctionCall     `parser:"| @@"`
		Column   *ColumnRef        `parser:"| @@"`
		Subquery *Query            `parser:"| '(' @@ ')'"`
		Group    *ExpressionList   `parser:"| @@"`
	}

	// Literal represents literal values
	Literal struct {
		String  *string `parser:"@String"`
		Number  *string `parser:"| @Number"`
		Boolean *string `parser:"| @('TRUE' | 'FALSE')"`
		Null    bool    `parser:"| @'NULL'"`
	}

	// ColumnRef represents column names, qualified names and `t.*`
	ColumnRef struct {
		Parts []string `parser:"@(Ident | QuotedIdent) ('.' @(Ident | QuotedIdent | '*'))*"`
	}

	// FunctionCall represents function invocations including aggregates and window functions
	FunctionCall struct {
		Name     string        `parser:"@(Ident | QuotedIdent | 'LEFT' | 'RIGHT' | 'REPLACE' | 'IF')"`
		Distinct bool          `parser:"'(' @'DISTINCT'?"`
		Star     bool          `parser:"( @'*'"`
		Args     []*Expression `parser:"| (@@ (',' @@)*)? ) ')'"`
		Over     *WindowSpec   `parser:"@@?"`
	}

	// WindowSpec represents OVER (PARTITION BY ... ORDER BY ...)
	WindowSpec struct {
		PartitionBy []*Expression `parser:"'OVER' '(' ('PARTITION' 'BY' @@ (',' @@)*)?"`
		OrderBy     []*OrderItem  `parser:"('ORDER' 'BY' @@ (',' @@)*)? ')'"`
	}

	// CaseExpression represents both simple and searched CASE expressions
	CaseExpression struct {
		Operand *Expression   `parser:"'CASE' @@?"`
		Whens   []*WhenClause `parser:"@@+"`
		Else    *Expression   `parser:"('ELSE' @@)? 'END'"`
	}

	// WhenClause represents WHEN condition THEN result
	WhenClause struct {
		Condition *Expression `parser:"'WHEN' @@"`
		Result    *Expression `parser:"'THEN' @@"`
	}

	// CastExpression represents CAST(expr AS type)
	CastExpression struct {
		Expr *Expression `parser:"'CAST' '(' @@"`
		Type *TypeName   `parser:"'AS' @@ ')'"`
	}

	// ExistsExpression represents EXISTS (subquery)
	ExistsExpression struct {
		Query *Query `parser:"'EXISTS' '(' @@ ')'"`
	}

	// ExpressionList represents a parenthesised expression or tuple
	ExpressionList struct {
		Items []*Expression `parser:"'(' @@ (',' @@)* ')'"`
	}
)
