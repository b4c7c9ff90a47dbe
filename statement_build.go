package sqlquery

import (
	"context"
	"fmt"

	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

// Render renders the statement by its kind, with the MySQL dialect.
//
// It fails only for an unsupported kind, in which case no text is returned.
// Missing table, fields or conditions are not errors: the best possible
// text is rendered instead.
func (s *Statement) Render() (string, error) {
	return s.BuildTo(sqlf.NewContext(context.Background(), dialect.MySQL{}))
}

// MustRender is like Render but panics if the statement cannot be rendered.
func (s *Statement) MustRender() string {
	query, err := s.Render()
	if err != nil {
		panic(err)
	}
	return query
}

// String implements fmt.Stringer. It returns "" for an unsupported kind.
func (s *Statement) String() string {
	query, _ := s.Render()
	return query
}

// BuildTo implements sqlf.Builder, so that a statement can be used as a
// sub-query of sqlf fragments, e.g.:
//
//	ids := sqlquery.NewSelect().Table("orders").Select("user_id")
//	sqlf.F("SELECT * FROM users WHERE id IN (?)", ids)
//
// Identifiers are quoted by the dialect of ctx. No bind var is ever
// committed to ctx: values are written verbatim.
func (s *Statement) BuildTo(ctx sqlf.Context) (query string, err error) {
	if s == nil {
		return "", nil
	}
	var b sqlf.Builder
	switch s.kind {
	case KindSelect:
		b = s.buildSelect()
	case KindUpdate:
		b = s.buildUpdate()
	case KindInsert:
		b = s.buildInsert()
	case KindDelete:
		b = s.buildDelete()
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, string(s.kind))
	}
	query, err = b.BuildTo(ctx)
	if err != nil {
		return "", err
	}
	s.printIfDebug(query)
	return query, nil
}

// qualifiedTable returns the table prefixed with the database if any.
func (s *Statement) qualifiedTable() string {
	if s.database == "" {
		return s.table
	}
	return s.database + "." + s.table
}
