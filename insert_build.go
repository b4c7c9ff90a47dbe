package sqlquery

import (
	"github.com/qjebbs/go-sqlf/v4"
)

// buildInsert builds an INSERT statement.
//
// The qualified table is quoted as a whole, e.g. `shop.users`. Column names
// are escaped and quoted, values are written verbatim in the same order.
func (s *Statement) buildInsert() sqlf.Builder {
	return sqlf.Join([]sqlf.Builder{
		raw("INSERT INTO"),
		sqlf.Identifier(s.qualifiedTable()),
		parenthesized(sqlf.Join(insertColumns(s.fields), ",")),
		raw("VALUES"),
		parenthesized(sqlf.Join(fieldValues(s.fields), ",")),
	}, " ")
}
