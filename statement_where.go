package sqlquery

import (
	"fmt"
	"strings"

	"github.com/foreline/sqlquery/internal/util"
)

// SetWhere adds a WHERE predicate joined by the connector, AND by default.
// An empty predicate, or one already added, is ignored.
func (s *Statement) SetWhere(clause string, connector ...string) {
	c := Condition{Clause: strings.TrimSpace(clause)}
	if len(connector) > 0 {
		c.Connector = strings.TrimSpace(connector[0])
	}
	s.SetWhereCondition(c)
}

// SetWhereCondition adds a WHERE record, which carries its own connector.
// An empty predicate, or one already added, is ignored.
func (s *Statement) SetWhereCondition(c Condition) {
	s.where.Add(c)
}

// Conditions returns a copy of the WHERE conditions.
func (s *Statement) Conditions() []Condition {
	return append([]Condition(nil), s.where.conditions...)
}

// Where adds a predicate joined with AND. e.g.:
//
//	s.Where("u.id > 5")
func (s *Statement) Where(clause string) *Statement {
	s.SetWhere(clause, ConnectorAnd)
	return s
}

// OrWhere adds a predicate joined with OR. e.g.:
//
//	s.Where("u.vip = 1").OrWhere("u.total > 100")
//
// Predicates are not parenthesized, wrap them yourself where
// precedence matters.
func (s *Statement) OrWhere(clause string) *Statement {
	s.SetWhere(clause, ConnectorOr)
	return s
}

// WhereEquals is a helper func similar to Where(), which adds a simple equality condition.
func (s *Statement) WhereEquals(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s = %s", column, literal(value)))
}

// WhereNotEquals is a helper func similar to Where(), which adds a simple not-equal condition.
func (s *Statement) WhereNotEquals(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s <> %s", column, literal(value)))
}

// WhereGreaterThan adds a greater-than condition like `t.id > 1`
func (s *Statement) WhereGreaterThan(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s > %s", column, literal(value)))
}

// WhereLessThan adds a less-than condition like `t.id < 1`
func (s *Statement) WhereLessThan(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s < %s", column, literal(value)))
}

// WhereGreaterThanOrEqual adds a greater-than-or-equal condition like `t.id >= 1`
func (s *Statement) WhereGreaterThanOrEqual(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s >= %s", column, literal(value)))
}

// WhereLessThanOrEqual adds a less-than-or-equal condition like `t.id <= 1`
func (s *Statement) WhereLessThanOrEqual(column string, value any) *Statement {
	return s.Where(fmt.Sprintf("%s <= %s", column, literal(value)))
}

// WhereIsNull adds a IS NULL condition like `t.deleted_at IS NULL`
func (s *Statement) WhereIsNull(column string) *Statement {
	return s.Where(column + " IS NULL")
}

// WhereIsNotNull adds a IS NOT NULL condition like `t.deleted_at IS NOT NULL`
func (s *Statement) WhereIsNotNull(column string) *Statement {
	return s.Where(column + " IS NOT NULL")
}

// WhereBetween adds a BETWEEN condition like `t.created_at BETWEEN '2020-01-01' AND '2021-01-01'`
func (s *Statement) WhereBetween(column string, start, end any) *Statement {
	return s.Where(fmt.Sprintf("%s BETWEEN %s AND %s", column, literal(start), literal(end)))
}

// WhereIn adds a where IN condition like `t.id IN (1, 2, 3)`.
// With no values, it adds a condition matching nothing.
func (s *Statement) WhereIn(column string, values ...any) *Statement {
	if len(values) == 0 {
		return s.Where("1 = 0")
	}
	return s.Where(fmt.Sprintf("%s IN (%s)", column, joinLiterals(values)))
}

// WhereNotIn adds a where NOT IN condition like `t.id NOT IN (1, 2, 3)`.
// With no values, it adds nothing.
func (s *Statement) WhereNotIn(column string, values ...any) *Statement {
	if len(values) == 0 {
		return s
	}
	return s.Where(fmt.Sprintf("%s NOT IN (%s)", column, joinLiterals(values)))
}

func joinLiterals(values []any) string {
	return strings.Join(util.Map(values, literal), ", ")
}
