// Package sqlquery builds MySQL statement text from declarative clause data.
//
// A Statement is created for one of four kinds, SELECT, INSERT, UPDATE or
// DELETE. Its clauses are filled in any order, and it is rendered once:
//
//	query, err := sqlquery.NewSelect().
//		Table("users").
//		Select("id", "name").
//		Where("id > 5").
//		OrderBy("name", sqlquery.OrderAsc).
//		Render()
//	// SELECT id, name FROM users WHERE id > 5 ORDER BY name ASC
//
// The builder is not a safety boundary. Predicates, expressions and values are
// written to the statement verbatim, so callers must pass SQL-safe literals or
// placeholders.
//
// Identifier quoting differs by statement kind: INSERT and DELETE wrap the
// table in backticks, INSERT also quotes and escapes its column names, UPDATE
// wraps its assignment columns, while SELECT and UPDATE leave the table name
// as given.
//
// A Statement is a sqlf.Builder: every clause is composed of go-sqlf
// builders, and Render builds it with a MySQL context. Clause text is never
// parsed for bind vars, so placeholders pass through untouched and no args
// are collected.
package sqlquery

import "errors"

// Kind is the statement kind.
type Kind string

// kinds
const (
	KindSelect Kind = "SELECT"
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindDelete Kind = "DELETE"
)

// ErrUnsupportedKind is returned when rendering a statement of a kind
// other than SELECT, INSERT, UPDATE and DELETE.
var ErrUnsupportedKind = errors.New("unsupported statement kind")
