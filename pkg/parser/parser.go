package parser

import (
	"io"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

var (
	// reserved words are lexed as Keyword tokens so they can never be taken for identifiers or
	// implicit aliases. Words such as KEY, NULLS, FIRST, LAST, RECURSIVE and CASCADE stay
	// identifiers and are matched by value where the grammar needs them.
	keywords = []string{
		"ALL", "AND", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST", "CHECK", "CONSTRAINT",
		"CREATE", "CROSS", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE", "END",
		"EXCEPT", "EXISTS", "FALSE", "FOREIGN", "FROM", "FULL", "GROUP", "HAVING", "IF", "ILIKE",
		"IN", "INNER", "INSERT", "INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT", "NOT",
		"NULL", "OFFSET", "ON", "OR", "ORDER", "OUTER", "OVER", "PARTITION", "PRIMARY",
		"REFERENCES", "REPLACE", "RETURNING", "RIGHT", "SELECT", "SET", "TABLE", "THEN", "TRUE",
		"UNION", "UNIQUE", "UPDATE", "USING", "VALUES", "VIEW", "WHEN", "WHERE", "WITH",
	}

	// sqlLexer defines the tokens of the supported SQL dialect
	sqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `--[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'(?:[^'\\]|\\.|'')*'`},
		{Name: "QuotedIdent", Pattern: "`(?:[^`]|``)*`|\"(?:[^\"]|\"\")*\""},
		{Name: "Number", Pattern: `(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][-+]?\d+)?`},
		{Name: "Keyword", Pattern: keywordPattern()},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_$]*`},
		{Name: "Operator", Pattern: `::|\|\||<=|>=|<>|!=|[-+*/%=<>]`},
		{Name: "Param", Pattern: `\?|\$\d+|[:@][a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),.;]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for SQL scripts
	parser = participle.MustBuild[SQL](
		participle.Lexer(sqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Keyword", "Ident"),
		participle.UseLookahead(4),
	)
)

// keywordPattern builds a case-insensitive alternation of the reserved words. Longer words come
// first so that prefixes (IN, INSERT) never shadow each other.
func keywordPattern() string {
	words := append([]string(nil), keywords...)
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})

	return `(?i)(?:` + strings.Join(words, "|") + `)\b`
}

type (
	// SQL is a parsed script: zero or more statements plus the comments found between them.
	SQL struct {
		Statements []*Statement `parser:"@@*"`

		comments map[int][]string
	}

	// Statement represents any supported statement with its optional terminator
	Statement struct {
		Pos lexer.Position

		Select      *Query           `parser:"( @@"`
		Insert      *InsertStmt      `parser:"| @@"`
		Update      *UpdateStmt      `parser:"| @@"`
		Delete      *DeleteStmt      `parser:"| @@"`
		CreateTable *CreateTableStmt `parser:"| @@"`
		CreateView  *CreateViewStmt  `parser:"| @@"`
		Drop        *DropStmt        `parser:"| @@ )"`
		Terminated  bool             `parser:"@';'?"`
	}
)

// LeadingComments returns the comments written before the statement at index i.
func (s *SQL) LeadingComments(i int) []string {
	if s == nil || i >= len(s.Statements) {
		return nil
	}

	return s.comments[i]
}

// TrailingComments returns the comments written after the last statement.
func (s *SQL) TrailingComments() []string {
	if s == nil {
		return nil
	}

	return s.comments[len(s.Statements)]
}

// Parse parses SQL statements from an io.Reader and returns the parsed script.
//
// Example usage:
//
//	file, err := os.Open("query.sql")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer file.Close()
//
//	sql, err := parser.Parse(file)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	for _, stmt := range sql.Statements {
//		if stmt.Select != nil {
//			fmt.Println("found a query")
//		}
//	}
//
// Returns an error if the reader cannot be read or contains invalid SQL.
func Parse(reader io.Reader) (*SQL, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	return ParseString(string(data))
}

// ParseString parses SQL statements from a string.
//
// Comments are kept when they sit between statements: each one belongs to the statement that
// starts right after it, or trails the script when no statement follows. A comment anywhere else
// is reported as an error instead of being dropped, so formatting a script never loses text
// silently.
//
// Example usage:
//
//	sql, err := parser.ParseString(`
//		-- active users
//		SELECT id, name FROM users WHERE active;
//		DELETE FROM sessions WHERE expires_at < now();
//	`)
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	fmt.Println(len(sql.Statements)) // 2
//
// Empty or whitespace-only input yields a script with no statements.
func ParseString(sql string) (*SQL, error) {
	result, err := parser.ParseString("", sql)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	if err := attachComments(result, scanComments(sql)); err != nil {
		return nil, errors.Wrap(err, "failed to parse SQL")
	}

	return result, nil
}
