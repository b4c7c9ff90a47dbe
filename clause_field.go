package sqlquery

import (
	"fmt"
	"strconv"

	"github.com/foreline/sqlquery/internal/ident"
	"github.com/foreline/sqlquery/internal/util"
	"github.com/qjebbs/go-sqlf/v4"
)

// Field is an entry of the statement field list.
//
// A Field without a Column is positional: its Value is a raw expression,
// e.g. a projected column of a SELECT or a `hits = hits + 1` snippet of an
// UPDATE. A Field with a Column pairs the column with a value, as used by the
// assignments of UPDATE and the column / value lists of INSERT.
//
// Values are rendered verbatim, they are never quoted nor escaped.
type Field struct {
	Column string
	Value  any
}

// Expr returns a positional field of the raw expression.
func Expr(expr string) Field {
	return Field{Value: expr}
}

// Exprs returns positional fields of the raw expressions.
func Exprs(exprs ...string) []Field {
	return util.Map(exprs, Expr)
}

// Assign returns a field which pairs the column with the value.
func Assign(column string, value any) Field {
	return Field{Column: column, Value: value}
}

// Positional reports whether the field is identified by its position
// rather than by a column name.
func (f Field) Positional() bool {
	return f.Column == ""
}

// assignment builds the field as an UPDATE assignment.
func (f Field) assignment() sqlf.Builder {
	if f.Positional() {
		return raw(literal(f.Value))
	}
	column := sqlf.Identifier(ident.Strip(f.Column))
	return sqlf.Func(func(ctx sqlf.Context) (string, error) {
		c, err := column.BuildTo(ctx)
		if err != nil {
			return "", err
		}
		return c + " = " + literal(f.Value), nil
	})
}

// insertColumns returns the column keys of fields for INSERT. A positional
// field is keyed by its ordinal among the positional fields.
func insertColumns(fields []Field) []sqlf.Builder {
	columns := make([]sqlf.Builder, 0, len(fields))
	pos := 0
	for _, f := range fields {
		if f.Positional() {
			columns = append(columns, sqlf.Identifier(strconv.Itoa(pos)))
			pos++
			continue
		}
		columns = append(columns, sqlf.Identifier(ident.Escape(ident.Strip(f.Column))))
	}
	return columns
}

// fieldValues returns the values of fields as verbatim builders.
func fieldValues(fields []Field) []sqlf.Builder {
	return util.Map(fields, func(f Field) sqlf.Builder {
		return raw(literal(f.Value))
	})
}

// literal renders v as SQL text without any quoting.
func literal(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

// raw returns a builder writing s as is. Unlike sqlf.F, the text is never
// scanned for bind vars, so `?`, `$1` and `#` stay untouched.
func raw(s string) sqlf.Builder {
	return sqlf.Func(func(sqlf.Context) (string, error) {
		return s, nil
	})
}

// parenthesized wraps the built b in parentheses, "()" when b is empty.
func parenthesized(b sqlf.Builder) sqlf.Builder {
	return sqlf.Func(func(ctx sqlf.Context) (string, error) {
		r, err := b.BuildTo(ctx)
		if err != nil {
			return "", err
		}
		return "(" + r + ")", nil
	})
}
