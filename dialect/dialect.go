package dialect

import (
	"fmt"
	"strings"
)

// Dialect encapsulates database-engine-specific syntax rules. Implementations
// are stateless and side-effect free.
type Dialect interface {
	// Name returns the engine tag ("postgres", "sqlite", "duckdb").
	Name() string

	// Quote wraps an identifier in the dialect's quoting characters. It does
	// not escape; identifiers containing the quote character are rejected
	// upstream, never rewritten.
	Quote(ident string) string

	// Placeholder returns the positional placeholder for the n-th parameter,
	// 1-based.
	Placeholder(n int) string

	// BindValue coerces a scalar to the representation the engine's driver
	// binds natively, such as booleans to 0/1 integers for engines without a
	// boolean type.
	BindValue(v any) any

	// DecodeValue is the inverse of BindValue, applied to values read back
	// from the driver. columnType is the engine's declared column type name
	// and decides whether a coercion convention applies.
	DecodeValue(columnType string, v any) any

	// CheckPlaceholders verifies that a raw SQL string contains exactly
	// params positional placeholders, ignoring single-quoted literals.
	CheckPlaceholders(sql string, params int) error
}

// ValidIdentifier reports whether a table or column name is usable with the
// supported dialects: non-empty and free of the double-quote character all of
// them quote with. Names that fail are rejected, never stripped or escaped.
func ValidIdentifier(name string) bool {
	return name != "" && !strings.ContainsAny(name, "\"\x00")
}

func quote(ident string) string {
	return `"` + ident + `"`
}

// countQuestions counts ? placeholders outside single-quoted literals.
func countQuestions(sql string) int {
	n := 0
	inLiteral := false
	for _, r := range sql {
		switch {
		case r == '\'':
			inLiteral = !inLiteral
		case r == '?' && !inLiteral:
			n++
		}
	}
	return n
}

// maxDollar returns the highest $n placeholder index outside single-quoted
// literals, or 0 when there is none.
func maxDollar(sql string) int {
	max := 0
	inLiteral := false
	for i := 0; i < len(sql); i++ {
		c := sql[i]
		if c == '\'' {
			inLiteral = !inLiteral
			continue
		}
		if c != '$' || inLiteral {
			continue
		}
		n := 0
		j := i + 1
		for j < len(sql) && sql[j] >= '0' && sql[j] <= '9' {
			n = n*10 + int(sql[j]-'0')
			j++
		}
		if j > i+1 && n > max {
			max = n
		}
		i = j - 1
	}
	return max
}

func placeholderCountError(sql string, have, want int) error {
	return fmt.Errorf("statement %q has %d placeholders, %d parameters given", sql, have, want)
}
