package sqlquery

import (
	"fmt"

	"github.com/qjebbs/go-sqlf/v4"
)

var (
	_ sqlf.Builder = Join{}
	_ sqlf.Builder = Limit{}
)

// join types
const (
	JoinDefault = "JOIN"
	JoinInner   = "INNER JOIN"
	JoinLeft    = "LEFT JOIN"
	JoinRight   = "RIGHT JOIN"
	JoinCross   = "CROSS JOIN"
)

// Join is a joined table. Table and On are required, Alias is optional,
// and Type defaults to JOIN. Completeness is not validated.
type Join struct {
	Type  string `yaml:"type"`
	Table string `yaml:"table"`
	Alias string `yaml:"alias"`
	On    string `yaml:"on"`
}

// BuildTo implements sqlf.Builder. It renders the join like
// `LEFT JOIN orders AS o ON o.user_id = u.id`.
func (j Join) BuildTo(ctx sqlf.Context) (string, error) {
	typ := j.Type
	if typ == "" {
		typ = JoinDefault
	}
	return sqlf.Join([]sqlf.Builder{
		raw(typ),
		raw(j.Table),
		sqlf.Prefix("AS", raw(j.Alias)),
		sqlf.Prefix("ON", raw(j.On)),
	}, " ").BuildTo(ctx)
}

// Limit is the LIMIT clause. It's rendered only when Count is positive,
// and Offset only when it's positive too.
type Limit struct {
	Count  int64 `yaml:"count"`
	Offset int64 `yaml:"offset"`
}

// BuildTo implements sqlf.Builder. It renders the LIMIT clause,
// or "" if Count is not positive.
func (l Limit) BuildTo(_ sqlf.Context) (string, error) {
	if l.Count <= 0 {
		return "", nil
	}
	if l.Offset > 0 {
		return fmt.Sprintf(`LIMIT %d, %d`, l.Offset, l.Count), nil
	}
	return fmt.Sprintf(`LIMIT %d`, l.Count), nil
}
