package sqlquery

import (
	"github.com/foreline/sqlquery/internal/util"
	"github.com/qjebbs/go-sqlf/v4"
)

// buildSelect builds a SELECT statement.
// Clauses without data build to "", and are dropped by the join.
func (s *Statement) buildSelect() sqlf.Builder {
	return sqlf.Join([]sqlf.Builder{
		raw("SELECT"),
		sqlf.Join(util.Map(s.options, raw), " "),
		sqlf.Join(fieldValues(s.fields), ", "),
		raw("FROM"),
		raw(s.qualifiedTable()),
		sqlf.Join(util.Map(s.joins, func(j Join) sqlf.Builder { return j }), " "),
		s.where,
		s.groups,
		s.orders,
		s.limit,
	}, " ")
}
