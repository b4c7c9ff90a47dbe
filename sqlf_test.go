package sqlquery_test

import (
	"context"
	"testing"

	"github.com/foreline/sqlquery"
	"github.com/qjebbs/go-sqlf/v4"
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

func TestStatementAsSubquery(t *testing.T) {
	ids := sqlquery.NewSelect().
		Table("orders").
		Select("user_id").
		Where("total > 100")
	b := sqlf.F("SELECT * FROM users WHERE id IN (?) AND active = ?", ids, true)
	ctx := sqlf.NewContext(context.Background(), dialect.MySQL{})
	query, args, err := b.Build(ctx)
	if err != nil {
		t.Fatal(err)
	}
	wantQuery := "SELECT * FROM users WHERE id IN (SELECT user_id FROM orders WHERE total > 100) AND active = ?"
	if query != wantQuery {
		t.Errorf("got:\n%s\nwant:\n%s", query, wantQuery)
	}
	if len(args) != 1 || args[0] != true {
		t.Errorf("got args %v, want [true]", args)
	}
}

func TestStatementAsSubqueryUnsupportedKind(t *testing.T) {
	b := sqlf.F("SELECT * FROM (?) AS t", sqlquery.New("replace").Table("t"))
	ctx := sqlf.NewContext(context.Background(), dialect.MySQL{})
	if _, _, err := b.Build(ctx); err == nil {
		t.Fatal("expected error for unsupported kind")
	}
}

func TestStatementKeepsBindVarsVerbatim(t *testing.T) {
	s := sqlquery.NewSelect().
		Table("users").
		Select("id", "name").
		Where("a = '?'").
		OrWhere("b = $1").
		Where("#c").
		OrderBy("", "")
	query, args, err := sqlf.Build(sqlf.NewContext(context.Background(), dialect.MySQL{}), s)
	if err != nil {
		t.Fatal(err)
	}
	want := "SELECT id, name FROM users WHERE a = '?' OR b = $1 AND #c"
	if query != want {
		t.Errorf("got:\n%s\nwant:\n%s", query, want)
	}
	if len(args) != 0 {
		t.Errorf("got args %v, want none", args)
	}
}

func TestStatementQuotesWithContextDialect(t *testing.T) {
	s := sqlquery.NewDelete().Table("logs").Where("id = ?")
	tests := []struct {
		name    string
		dialect dialect.Dialect
		want    string
	}{
		{"mysql", dialect.MySQL{}, "DELETE FROM `logs` WHERE id = ?"},
		{"postgres", dialect.PostgreSQL{}, `DELETE FROM "logs" WHERE id = ?`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := s.BuildTo(sqlf.NewContext(context.Background(), tt.dialect))
			if err != nil {
				t.Fatal(err)
			}
			if query != tt.want {
				t.Errorf("got %q, want %q", query, tt.want)
			}
		})
	}
}
