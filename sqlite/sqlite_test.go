package sqlite

import (
	"context"
	"errors"
	"testing"

	directdb "github.com/directdb-project/directdb"
	"github.com/directdb-project/directdb/conn"
	"github.com/directdb-project/directdb/connmock"
	"github.com/directdb-project/directdb/engine"
	"github.com/directdb-project/directdb/query"
)

func TestNewRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); !errors.Is(err, directdb.ErrValidation) {
		t.Errorf("New error = %v, want ErrValidation", err)
	}
	if _, err := New(Config{Path: ":memory:"}); err != nil {
		t.Errorf("New with in-memory path returned error: %v", err)
	}
}

func TestSelectUsesQuestionPlaceholders(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{
		ExpectedText: `SELECT * FROM "users" WHERE "age" > ? AND "name" = ?`,
		ParamsValidator: func(params []any) error {
			if len(params) != 2 || params[0] != 18 || params[1] != "Bob" {
				return errors.New("params mismatch")
			}
			return nil
		},
		Response: func() *conn.Result {
			return &conn.Result{Columns: []string{"id"}, Types: []string{"INTEGER"}}
		},
	})

	db, err := New(Config{Driver: mock})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	_, err = db.Select(context.Background(), "users", engine.SelectOpts{
		Filters: []query.Filter{query.Gt("age", 18), query.Eq("name", "Bob")},
	})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
}

func TestInsertBindsBoolAsInteger(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{
		ExpectedText: `INSERT INTO "users" ("name","active") VALUES (?,?)`,
		ParamsValidator: func(params []any) error {
			if len(params) != 2 || params[1] != int64(1) {
				return errors.New("bool not coerced to integer")
			}
			return nil
		},
		Affected: 1,
	})

	db, err := New(Config{Driver: mock})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	res, err := db.Insert(context.Background(), "users",
		query.Set("name", "Alice"),
		query.Set("active", true),
	)
	if err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
	if n, _ := res.Affected(); n != 1 {
		t.Errorf("Affected() = %d, want 1", n)
	}
}

func TestBooleanColumnsDecodeOnTheWayOut(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{
		Response: func() *conn.Result {
			return &conn.Result{
				Columns: []string{"active", "count"},
				Types:   []string{"BOOLEAN", "INTEGER"},
				Rows:    [][]any{{int64(1), int64(1)}},
			}
		},
	})

	db, _ := New(Config{Driver: mock})
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	res, err := db.Select(context.Background(), "flags", engine.SelectOpts{})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if res[0]["active"] != true {
		t.Errorf("BOOLEAN column = %#v, want true", res[0]["active"])
	}
	if res[0]["count"] != int64(1) {
		t.Errorf("INTEGER column = %#v, want int64(1)", res[0]["count"])
	}
}

func TestCloseThenOperateFails(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{})
	db, _ := New(Config{Driver: mock})
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}
	if err := db.Close(context.Background()); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if _, err := db.Raw(context.Background(), "SELECT 1"); !errors.Is(err, directdb.ErrClosed) {
		t.Errorf("Raw after close error = %v, want ErrClosed", err)
	}
}
