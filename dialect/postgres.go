package dialect

import "strconv"

// Postgres returns the PostgreSQL dialect: double-quoted identifiers and
// numbered $1..$n placeholders. PostgreSQL binds every supported scalar
// natively, so value coercion is the identity in both directions.
func Postgres() Dialect { return postgres{} }

type postgres struct{}

func (postgres) Name() string { return "postgres" }

func (postgres) Quote(ident string) string { return quote(ident) }

func (postgres) Placeholder(n int) string { return "$" + strconv.Itoa(n) }

func (postgres) BindValue(v any) any { return v }

func (postgres) DecodeValue(_ string, v any) any { return v }

// CheckPlaceholders requires the highest $n index to equal params. Reusing a
// placeholder, as in "$1 = $1", is legal in PostgreSQL and stays legal here.
func (postgres) CheckPlaceholders(sql string, params int) error {
	if have := maxDollar(sql); have != params {
		return placeholderCountError(sql, have, params)
	}
	return nil
}
