package sqlquery

import (
	"strings"

	"github.com/foreline/sqlquery/internal/util"
	"github.com/qjebbs/go-sqlf/v4"
)

var _ sqlf.Builder = (*orderList)(nil)

// orders
const (
	OrderAsc  = "ASC"
	OrderDesc = "DESC"
)

// Order is an ORDER BY term.
type Order struct {
	Column    string `yaml:"column"`
	Direction string `yaml:"direction"`
}

// orderList represents the ORDER BY clause.
// Unlike groupList, the same column may be ordered more than once.
type orderList struct {
	orders []Order
}

func newOrderList() *orderList {
	return &orderList{}
}

// Add normalizes and appends o. The direction is uppercased and defaults
// to ASC. It reports whether o is stored, which fails only for an empty column.
func (l *orderList) Add(o Order) bool {
	o.Column = strings.TrimSpace(o.Column)
	if o.Column == "" {
		return false
	}
	o.Direction = strings.ToUpper(strings.TrimSpace(o.Direction))
	if o.Direction == "" {
		o.Direction = OrderAsc
	}
	l.orders = append(l.orders, o)
	return true
}

// Empty returns whether there is no term.
func (l *orderList) Empty() bool {
	return l == nil || len(l.orders) == 0
}

// BuildTo implements sqlf.Builder. It renders the ORDER BY clause,
// or "" if there is no term.
func (l *orderList) BuildTo(ctx sqlf.Context) (string, error) {
	if l.Empty() {
		return "", nil
	}
	terms := util.Map(l.orders, func(o Order) sqlf.Builder {
		return raw(o.Column + " " + o.Direction)
	})
	return sqlf.Prefix("ORDER BY", sqlf.Join(terms, ", ")).BuildTo(ctx)
}
