package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type comment struct {
	text string
	pos  lexer.Position
	// next is the offset of the first token after the comment, or -1 at the end of the script.
	next int
}

// scanComments lists the comments of a script together with the token that follows each one.
// The script is expected to have parsed already, so lexer errors cannot occur here.
func scanComments(sql string) []comment {
	lex, err := sqlLexer.Lex("", strings.NewReader(sql))
	if err != nil {
		return nil
	}

	symbols := sqlLexer.Symbols()
	var (
		line  = symbols["Comment"]
		block = symbols["MultilineComment"]
		space = symbols["Whitespace"]
	)

	var (
		comments []comment
		pending  int
	)

	for {
		tok, err := lex.Next()
		if err != nil || tok.EOF() {
			break
		}

		switch tok.Type {
		case space:
			continue
		case line, block:
			comments = append(comments, comment{
				text: strings.TrimRight(tok.Value, " \t"),
				pos:  tok.Pos,
				next: -1,
			})
		default:
			for i := pending; i < len(comments); i++ {
				comments[i].next = tok.Pos.Offset
			}
			pending = len(comments)
		}
	}

	return comments
}

// attachComments groups comments by the statement that starts right after them. Group
// len(sql.Statements) holds the comments after the last statement. A comment followed by anything
// other than the start of a statement sits inside one and is rejected.
func attachComments(sql *SQL, comments []comment) error {
	starts := make(map[int]int, len(sql.Statements))
	for i, stmt := range sql.Statements {
		starts[stmt.Pos.Offset] = i
	}

	groups := make(map[int][]string)
	for _, c := range comments {
		group := len(sql.Statements)
		if c.next >= 0 {
			i, ok := starts[c.next]
			if !ok {
				return participle.Errorf(c.pos, "comments are only supported between statements")
			}
			group = i
		}

		groups[group] = append(groups[group], c.text)
	}

	sql.comments = groups
	return nil
}
