package sqlquery

import (
	"github.com/qjebbs/go-sqlf/v4"
)

// buildDelete builds a DELETE statement.
// Fields, usually none, are the target tables of a multi-table delete.
func (s *Statement) buildDelete() sqlf.Builder {
	return sqlf.Join([]sqlf.Builder{
		raw("DELETE"),
		sqlf.Join(fieldValues(s.fields), ", "),
		raw("FROM"),
		sqlf.Identifier(s.qualifiedTable()),
		s.where,
	}, " ")
}
