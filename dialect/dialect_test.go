package dialect

import "testing"

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	if got := Postgres().Placeholder(1); got != "$1" {
		t.Errorf("postgres placeholder 1: got %q", got)
	}
	if got := Postgres().Placeholder(12); got != "$12" {
		t.Errorf("postgres placeholder 12: got %q", got)
	}
	if got := SQLite().Placeholder(7); got != "?" {
		t.Errorf("sqlite placeholder: got %q", got)
	}
	if got := DuckDB().Placeholder(3); got != "?" {
		t.Errorf("duckdb placeholder: got %q", got)
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	for _, d := range []Dialect{Postgres(), SQLite(), DuckDB()} {
		if got := d.Quote("users"); got != `"users"` {
			t.Errorf("%s quote: got %q", d.Name(), got)
		}
	}
}

func TestValidIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ident string
		want  bool
	}{
		{"plain", "users", true},
		{"underscore", "user_accounts", true},
		{"empty", "", false},
		{"embedded quote", `us"ers`, false},
		{"nul byte", "users\x00", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ValidIdentifier(tc.ident); got != tc.want {
				t.Errorf("ValidIdentifier(%q) = %v, want %v", tc.ident, got, tc.want)
			}
		})
	}
}

func TestSQLiteBindValue(t *testing.T) {
	t.Parallel()

	d := SQLite()
	if got := d.BindValue(true); got != int64(1) {
		t.Errorf("bind true: got %v", got)
	}
	if got := d.BindValue(false); got != int64(0) {
		t.Errorf("bind false: got %v", got)
	}
	if got := d.BindValue("text"); got != "text" {
		t.Errorf("bind string: got %v", got)
	}
}

func TestSQLiteDecodeValue(t *testing.T) {
	t.Parallel()

	d := SQLite()
	if got := d.DecodeValue("BOOLEAN", int64(1)); got != true {
		t.Errorf("decode BOOLEAN 1: got %v", got)
	}
	if got := d.DecodeValue("bool", int64(0)); got != false {
		t.Errorf("decode bool 0: got %v", got)
	}
	// Integer columns stay integers even when they hold 0/1.
	if got := d.DecodeValue("INTEGER", int64(1)); got != int64(1) {
		t.Errorf("decode INTEGER 1: got %v", got)
	}
}

func TestPostgresCoercionIsIdentity(t *testing.T) {
	t.Parallel()

	d := Postgres()
	if got := d.BindValue(true); got != true {
		t.Errorf("bind: got %v", got)
	}
	if got := d.DecodeValue("BOOL", true); got != true {
		t.Errorf("decode: got %v", got)
	}
}

func TestCheckPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		d       Dialect
		sql     string
		params  int
		wantErr bool
	}{
		{"question match", SQLite(), "SELECT * FROM t WHERE a = ? AND b = ?", 2, false},
		{"question too few params", SQLite(), "SELECT * FROM t WHERE a = ?", 0, true},
		{"question in literal ignored", SQLite(), "SELECT * FROM t WHERE a = '?' AND b = ?", 1, false},
		{"dollar match", Postgres(), "SELECT * FROM t WHERE a = $1 AND b = $2", 2, false},
		{"dollar reuse", Postgres(), "SELECT * FROM t WHERE a = $1 OR b = $1", 1, false},
		{"dollar gap", Postgres(), "SELECT * FROM t WHERE a = $2", 1, true},
		{"dollar in literal ignored", Postgres(), "SELECT '$9' WHERE a = $1", 1, false},
		{"duckdb match", DuckDB(), "INSERT INTO t VALUES (?,?)", 2, false},
		{"none expected", Postgres(), "SELECT 1", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.d.CheckPlaceholders(tc.sql, tc.params)
			if (err != nil) != tc.wantErr {
				t.Errorf("CheckPlaceholders(%q, %d) error = %v, wantErr %v", tc.sql, tc.params, err, tc.wantErr)
			}
		})
	}
}
