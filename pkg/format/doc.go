// Package format provides well-formatted SQL output for parsed statements.
//
// This package takes parsed parser statements and generates clean, readable SQL
// with consistent formatting, proper indentation, and standardized styling.
// It separates formatting concerns from parsing.
//
// The layout is fixed:
//   - Keywords are uppercased; identifiers, functions and types keep their spelling
//   - Every clause keyword starts a line and its body is indented by two spaces
//   - List items get a line each, separated by trailing commas
//   - AND / OR conditions of WHERE, HAVING and JOIN bodies start a new line
//   - Subqueries and CASE expressions are laid out as indented blocks
//   - Comments between statements are kept
//
// Usage:
//
//	// One-shot formatting of source text
//	formatted, err := format.Source("select * from t")
//	// formatted == "SELECT\n  *\nFROM\n  t"
//
//	// Formatting a parsed script
//	sql, _ := parser.ParseString("select 1; select 2;")
//	var buf bytes.Buffer
//	err := format.New().Format(&buf, sql)
//
// Source never panics: parse failures and internal faults are both reported as *Error.
package format
