package sqlquery

import (
	"github.com/foreline/sqlquery/internal/util"
	"github.com/qjebbs/go-sqlf/v4"
)

var (
	_ sqlf.Builder = (*conditionList)(nil)
	_ sqlf.Builder = (*groupList)(nil)
)

// connectors
const (
	ConnectorAnd = "AND"
	ConnectorOr  = "OR"
)

// Condition is a WHERE predicate with the connector joining it to the
// previous one. The connector of the first condition is never rendered.
type Condition struct {
	Clause    string `yaml:"clause"`
	Connector string `yaml:"connector"`
}

// conditionList represents the WHERE clause.
//
// Conditions are kept in insertion order, a clause text is stored only once.
// Lookup is a linear scan over the stored clauses, which is fine for the
// handful of predicates a statement carries.
type conditionList struct {
	conditions []Condition
}

func newConditionList() *conditionList {
	return &conditionList{}
}

// Add adds c unless its clause is empty or already present.
// It reports whether c is stored.
func (l *conditionList) Add(c Condition) bool {
	if c.Clause == "" || l.Contains(c.Clause) {
		return false
	}
	if c.Connector == "" {
		c.Connector = ConnectorAnd
	}
	l.conditions = append(l.conditions, c)
	return true
}

// Contains reports whether the clause is already stored.
func (l *conditionList) Contains(clause string) bool {
	return util.IndexFunc(l.conditions, func(c Condition) bool {
		return c.Clause == clause
	}) >= 0
}

// Empty returns whether there is no condition.
func (l *conditionList) Empty() bool {
	return l == nil || len(l.conditions) == 0
}

// BuildTo implements sqlf.Builder. It renders the WHERE clause,
// or "" if there is no condition.
func (l *conditionList) BuildTo(ctx sqlf.Context) (string, error) {
	if l.Empty() {
		return "", nil
	}
	elements := make([]sqlf.Builder, 0, len(l.conditions))
	for i, c := range l.conditions {
		if i == 0 {
			elements = append(elements, raw(c.Clause))
			continue
		}
		elements = append(elements, raw(c.Connector+" "+c.Clause))
	}
	return sqlf.Prefix("WHERE", sqlf.Join(elements, " ")).BuildTo(ctx)
}

// Group is a GROUP BY column.
type Group struct {
	Column string `yaml:"column"`
}

// groupList represents the GROUP BY clause, columns are unique.
type groupList struct {
	groups []Group
}

func newGroupList() *groupList {
	return &groupList{}
}

// Add adds g unless its column is empty or already grouped.
// It reports whether g is stored.
func (l *groupList) Add(g Group) bool {
	if g.Column == "" {
		return false
	}
	if util.IndexFunc(l.groups, func(e Group) bool { return e.Column == g.Column }) >= 0 {
		return false
	}
	l.groups = append(l.groups, g)
	return true
}

// Empty returns whether there is no column.
func (l *groupList) Empty() bool {
	return l == nil || len(l.groups) == 0
}

// BuildTo implements sqlf.Builder. It renders the GROUP BY clause,
// or "" if there is no column.
func (l *groupList) BuildTo(ctx sqlf.Context) (string, error) {
	if l.Empty() {
		return "", nil
	}
	columns := util.Map(l.groups, func(g Group) sqlf.Builder {
		return raw(g.Column)
	})
	return sqlf.Prefix("GROUP BY", sqlf.Join(columns, ", ")).BuildTo(ctx)
}
