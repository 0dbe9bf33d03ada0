// Package parser provides a participle-based parser for SQL statements.
//
// This package implements a parser using github.com/alecthomas/participle/v2 that
// turns SQL source text into a typed AST suitable for reformatting. It covers the
// common statements of an interactive SQL session:
//
//   - SELECT with CTEs (WITH [RECURSIVE]), joins, subqueries, GROUP BY / HAVING,
//     UNION / INTERSECT / EXCEPT, ORDER BY, LIMIT and OFFSET
//   - INSERT ... VALUES / SELECT, UPDATE ... SET, DELETE FROM, each with RETURNING
//   - CREATE TABLE with column and table constraints, CREATE [OR REPLACE] VIEW
//   - DROP TABLE / VIEW [IF EXISTS] ... [CASCADE]
//
// Expressions follow the usual precedence (OR, AND, NOT, comparison, additive,
// multiplicative, unary, `::` casts) and include CASE, CAST, EXISTS, IN lists and
// subqueries, BETWEEN, LIKE / ILIKE, IS [NOT] NULL, bind parameters and window
// functions.
//
// Keywords are case-insensitive; identifiers keep their original spelling. A
// script may hold any number of statements, each optionally terminated by `;`.
//
// Comments placed between statements are kept so they can be written back out.
// A comment anywhere else makes parsing fail rather than silently dropping it.
//
// Basic usage:
//
//	sql, err := parser.ParseString("select id, name from users where active;")
//	if err != nil {
//		log.Fatalf("Parse error: %v", err)
//	}
//
//	query := sql.Statements[0].Select
//	fmt.Println(len(query.Body.Items)) // 2
//
// Errors carry the line and column of the offending token.
package parser
