package dialect

import "strings"

// SQLite returns the SQLite dialect: double-quoted identifiers and repeated ?
// placeholders. SQLite stores booleans as integers, so BindValue maps bool to
// 0/1 and DecodeValue maps integers back to bool for columns declared
// BOOLEAN or BOOL.
func SQLite() Dialect { return sqlite{} }

type sqlite struct{}

func (sqlite) Name() string { return "sqlite" }

func (sqlite) Quote(ident string) string { return quote(ident) }

func (sqlite) Placeholder(int) string { return "?" }

func (sqlite) BindValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

func (sqlite) DecodeValue(columnType string, v any) any {
	switch strings.ToUpper(columnType) {
	case "BOOLEAN", "BOOL":
		if n, ok := v.(int64); ok {
			return n != 0
		}
	}
	return v
}

func (sqlite) CheckPlaceholders(sql string, params int) error {
	if have := countQuestions(sql); have != params {
		return placeholderCountError(sql, have, params)
	}
	return nil
}
