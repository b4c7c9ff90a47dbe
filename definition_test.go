package sqlquery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foreline/sqlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefinitionSelect(t *testing.T) {
	def, err := sqlquery.ParseDefinition([]byte(`
database: shop
table: users
options: [SQL_CALC_FOUND_ROWS]
fields: [u.id, u.name]
joins:
  - type: LEFT JOIN
    table: orders
    alias: o
    on: o.user_id = u.id
  - table: cities
    on: cities.id = u.city_id
where:
  - u.active = 1
  - clause: u.vip = 1
    connector: OR
  - u.active = 1
group:
  - u.id
  - column: u.name
  - u.id
order:
  - u.name
  - created_at desc
  - column: u.id
    direction: desc
limit:
  count: 10
  offset: 20
`))
	require.NoError(t, err)
	assert.Equal(t, "SELECT", def.Kind)

	s := def.Statement()
	assert.Equal(t, sqlquery.KindSelect, s.Kind())
	assert.Len(t, s.Conditions(), 2)
	assert.Len(t, s.Groups(), 2)
	assert.Equal(t, []sqlquery.Order{
		{Column: "u.name", Direction: "ASC"},
		{Column: "created_at", Direction: "DESC"},
		{Column: "u.id", Direction: "DESC"},
	}, s.Orders())

	want := "SELECT SQL_CALC_FOUND_ROWS u.id, u.name FROM shop.users" +
		" LEFT JOIN orders AS o ON o.user_id = u.id" +
		" JOIN cities ON cities.id = u.city_id" +
		" WHERE u.active = 1 OR u.vip = 1" +
		" GROUP BY u.id, u.name" +
		" ORDER BY u.name ASC, created_at DESC, u.id DESC" +
		" LIMIT 20, 10"
	assert.Equal(t, want, s.MustRender())
}

func TestParseDefinitionInsert(t *testing.T) {
	def, err := sqlquery.ParseDefinition([]byte(`
kind: insert
table: users
fields:
  - name: "'Ann'"
  - age: 30
  - deleted_at: null
`))
	require.NoError(t, err)
	s := def.Statement()
	assert.Equal(t, []sqlquery.Field{
		sqlquery.Assign("name", "'Ann'"),
		sqlquery.Assign("age", "30"),
		sqlquery.Assign("deleted_at", nil),
	}, s.Fields())
	assert.Equal(t, "INSERT INTO `users` (`name`,`age`,`deleted_at`) VALUES ('Ann',30,NULL)", s.MustRender())
}

func TestParseDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "fields: [a"},
		{"multi-key field", "fields:\n  - {a: 1, b: 2}\n"},
		{"nested field value", "fields:\n  - a: [1, 2]\n"},
		{"sequence field", "fields:\n  - [a, b]\n"},
		{"bad where", "where:\n  - [a]\n"},
		{"bad limit", "limit: ten\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sqlquery.ParseDefinition([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseDefinitionUnsupportedKind(t *testing.T) {
	def, err := sqlquery.ParseDefinition([]byte("kind: replace\ntable: t\n"))
	require.NoError(t, err)
	_, err = def.Statement().Render()
	assert.ErrorIs(t, err, sqlquery.ErrUnsupportedKind)
}

func TestLoadDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: delete\ntable: logs\n"), 0o644))

	def, err := sqlquery.LoadDefinition(path)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM `logs`", def.Statement().MustRender())

	_, err = sqlquery.LoadDefinition(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
