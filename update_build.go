package sqlquery

import (
	"github.com/foreline/sqlquery/internal/util"
	"github.com/qjebbs/go-sqlf/v4"
)

// noopAssignment keeps the SET clause valid when there is nothing to assign.
const noopAssignment = "`ID` = `ID`"

// buildUpdate builds an UPDATE statement.
//
// Positional fields are written as raw expressions, column / value pairs as
// "`column` = value".
func (s *Statement) buildUpdate() sqlf.Builder {
	set := raw(noopAssignment)
	if len(s.fields) > 0 {
		set = sqlf.Join(util.Map(s.fields, Field.assignment), ", ")
	}
	return sqlf.Join([]sqlf.Builder{
		raw("UPDATE"),
		raw(s.qualifiedTable()),
		raw("SET"),
		set,
		s.where,
	}, " ")
}
