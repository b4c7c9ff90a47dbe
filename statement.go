package sqlquery

import (
	"strings"

	"github.com/qjebbs/go-sqlf/v4"
)

var _ sqlf.Builder = (*Statement)(nil)

// Statement is the SQL statement builder.
//
// The kind is fixed at construction. Clause data is accumulated by the Set*
// mutators, or their chainable counterparts, in any order, and Render turns
// it into SQL text. A Statement is meant to be built and rendered by a single
// owner within one request, it's not safe for concurrent use.
type Statement struct {
	kind     Kind
	database string // optional qualifier of the table
	table    string

	fields  []Field        // projection, assignments or delete targets.
	where   *conditionList // where conditions, joined by their connectors.
	joins   []Join         // joined tables in order.
	groups  *groupList     // group by columns, joined with comma.
	orders  *orderList     // order by terms, joined with comma.
	limit   Limit          // limit count and offset
	options []string       // select options, e.g. SQL_CALC_FOUND_ROWS

	debugger
}

// New returns a new Statement of the kind, which is uppercased.
// An unknown kind is accepted here, and reported by Render.
func New(kind string) *Statement {
	return &Statement{
		kind:   Kind(strings.ToUpper(kind)),
		where:  newConditionList(),
		groups: newGroupList(),
		orders: newOrderList(),
	}
}

// NewSelect returns a new SELECT statement.
func NewSelect() *Statement {
	return New(string(KindSelect))
}

// NewInsert returns a new INSERT statement.
func NewInsert() *Statement {
	return New(string(KindInsert))
}

// NewUpdate returns a new UPDATE statement.
func NewUpdate() *Statement {
	return New(string(KindUpdate))
}

// NewDelete returns a new DELETE statement.
func NewDelete() *Statement {
	return New(string(KindDelete))
}

// Kind returns the statement kind.
func (s *Statement) Kind() Kind {
	return s.kind
}

// SetDatabase sets the database which qualifies the table.
func (s *Statement) SetDatabase(name string) {
	s.database = strings.TrimSpace(name)
}

// Database sets the database which qualifies the table.
func (s *Statement) Database(name string) *Statement {
	s.SetDatabase(name)
	return s
}

// SetTable sets the table.
func (s *Statement) SetTable(name string) {
	s.table = strings.TrimSpace(name)
}

// Table sets the table, which is the FROM table of SELECT and DELETE,
// and the target of INSERT and UPDATE.
func (s *Statement) Table(name string) *Statement {
	s.SetTable(name)
	return s
}

// SetFields replaces all the fields. It expects the complete set of fields,
// not the ones to add.
func (s *Statement) SetFields(fields ...Field) {
	s.fields = append([]Field(nil), fields...)
}

// AddField appends a positional field of the expression.
// An empty expression is ignored.
func (s *Statement) AddField(expr string) {
	if expr == "" {
		return
	}
	s.fields = append(s.fields, Expr(expr))
}

// Select replaces the fields with positional expressions, e.g.:
//
//	s.Select("id", "COUNT(*) AS total")
func (s *Statement) Select(exprs ...string) *Statement {
	s.SetFields(Exprs(exprs...)...)
	return s
}

// Field appends a positional field of the expression.
func (s *Statement) Field(expr string) *Statement {
	s.AddField(expr)
	return s
}

// Set appends a column / value pair to the fields.
// Multiple calls will append the pairs, for example:
//
//	s.Set("name", "'Alice'").Set("age", 30)
//
// The value is rendered as is: quote string literals yourself.
func (s *Statement) Set(column string, value any) *Statement {
	s.fields = append(s.fields, Assign(column, value))
	return s
}

// Fields returns a copy of the fields.
func (s *Statement) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// SetGroup adds a GROUP BY column.
// It reports false when the column is empty or already grouped.
func (s *Statement) SetGroup(column string) bool {
	return s.SetGroupBy(Group{Column: strings.TrimSpace(column)})
}

// SetGroupBy adds a GROUP BY record.
// It reports false when the column is empty or already grouped.
func (s *Statement) SetGroupBy(g Group) bool {
	return s.groups.Add(g)
}

// GroupBy adds GROUP BY columns, ignoring empty and repeated ones.
func (s *Statement) GroupBy(columns ...string) *Statement {
	for _, c := range columns {
		s.SetGroup(c)
	}
	return s
}

// Groups returns a copy of the GROUP BY columns.
func (s *Statement) Groups() []Group {
	return append([]Group(nil), s.groups.groups...)
}

// SetOrder appends an ORDER BY term. The direction is uppercased,
// and defaults to ASC. A column that is empty after trimming is ignored.
func (s *Statement) SetOrder(column string, direction ...string) {
	o := Order{Column: column}
	if len(direction) > 0 {
		o.Direction = direction[0]
	}
	s.SetOrderBy(o)
}

// SetOrderBy appends an ORDER BY record. Terms are never deduplicated,
// but a record with an empty column is ignored.
func (s *Statement) SetOrderBy(o Order) {
	s.orders.Add(o)
}

// OrderBy appends an ORDER BY term, the direction can be "ASC" or "DESC".
func (s *Statement) OrderBy(column string, direction string) *Statement {
	s.SetOrder(column, direction)
	return s
}

// Orders returns a copy of the ORDER BY terms.
func (s *Statement) Orders() []Order {
	return append([]Order(nil), s.orders.orders...)
}

// SetLimit sets the row count and the optional offset. The values are
// stored as is, but only a positive count is rendered.
func (s *Statement) SetLimit(count int64, offset ...int64) {
	s.limit.Count = count
	s.limit.Offset = 0
	if len(offset) > 0 {
		s.limit.Offset = offset[0]
	}
}

// Limit sets the row count, keeping the offset.
func (s *Statement) Limit(count int64) *Statement {
	s.limit.Count = count
	return s
}

// Offset sets the offset, keeping the row count.
func (s *Statement) Offset(offset int64) *Statement {
	s.limit.Offset = offset
	return s
}

// SetSelectOptions replaces the SELECT options,
// which are written verbatim right after the SELECT keyword.
func (s *Statement) SetSelectOptions(options ...string) {
	s.options = append([]string(nil), options...)
}

// Options replaces the SELECT options.
func (s *Statement) Options(options ...string) *Statement {
	s.SetSelectOptions(options...)
	return s
}

// Distinct adds the DISTINCT option.
func (s *Statement) Distinct() *Statement {
	return s.addOption("DISTINCT")
}

// CalcFoundRows adds the SQL_CALC_FOUND_ROWS option.
func (s *Statement) CalcFoundRows() *Statement {
	return s.addOption("SQL_CALC_FOUND_ROWS")
}

func (s *Statement) addOption(option string) *Statement {
	for _, o := range s.options {
		if strings.EqualFold(o, option) {
			return s
		}
	}
	s.options = append(s.options, option)
	return s
}
