// Package ident handles MySQL identifier text.
//
// Quoting itself is left to the dialect of the build context, e.g.
// sqlf.Identifier, which wraps in backticks and doubles embedded ones.
package ident

import "strings"

var escaper = strings.NewReplacer(
	"\\", "\\\\",
	"\x00", "\\0",
	"\n", "\\n",
	"\r", "\\r",
	"'", "\\'",
	"\"", "\\\"",
	"\x1a", "\\Z",
)

// Strip removes leading and trailing backticks from name.
func Strip(name string) string {
	return strings.Trim(name, "`")
}

// Escape escapes control and quote characters of name the way
// mysql_escape_string does. Backticks are kept.
func Escape(name string) string {
	return escaper.Replace(name)
}
