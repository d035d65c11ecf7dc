package dialect

// DuckDB returns the DuckDB dialect. DuckDB accepts the same repeated ?
// placeholders and double-quoted identifiers as SQLite but has a native
// boolean type, so value coercion is the identity.
func DuckDB() Dialect { return duckdb{} }

type duckdb struct{}

func (duckdb) Name() string { return "duckdb" }

func (duckdb) Quote(ident string) string { return quote(ident) }

func (duckdb) Placeholder(int) string { return "?" }

func (duckdb) BindValue(v any) any { return v }

func (duckdb) DecodeValue(_ string, v any) any { return v }

func (duckdb) CheckPlaceholders(sql string, params int) error {
	if have := countQuestions(sql); have != params {
		return placeholderCountError(sql, have, params)
	}
	return nil
}
