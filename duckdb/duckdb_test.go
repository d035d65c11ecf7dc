package duckdb

import (
	"context"
	"errors"
	"testing"

	"github.com/directdb-project/directdb/conn"
	"github.com/directdb-project/directdb/connmock"
	"github.com/directdb-project/directdb/engine"
	"github.com/directdb-project/directdb/query"
)

func TestNewAllowsInMemory(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{}); err != nil {
		t.Errorf("New with empty path returned error: %v", err)
	}
}

func TestSelectUsesQuestionPlaceholders(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{
		ExpectedText: `SELECT * FROM "events" WHERE "kind" = ? LIMIT 10`,
		Response: func() *conn.Result {
			return &conn.Result{
				Columns: []string{"id", "kind"},
				Types:   []string{"BIGINT", "VARCHAR"},
				Rows:    [][]any{{int64(1), "click"}},
			}
		},
	})

	db, err := New(Config{Driver: mock})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	res, err := db.Select(context.Background(), "events", engine.SelectOpts{
		Filters: []query.Filter{query.Eq("kind", "click")},
		Limit:   10,
	})
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if len(res) != 1 || res[0]["kind"] != "click" {
		t.Errorf("unexpected result: %#v", res)
	}
}

func TestBooleanPassesThroughNatively(t *testing.T) {
	t.Parallel()

	mock, _ := connmock.New(connmock.Config{
		ExpectedText: `INSERT INTO "flags" ("on") VALUES (?)`,
		ParamsValidator: func(params []any) error {
			if len(params) != 1 || params[0] != true {
				return errors.New("expected native bool")
			}
			return nil
		},
		Affected: 1,
	})

	db, _ := New(Config{Driver: mock})
	if err := db.Connect(context.Background()); err != nil {
		t.Fatalf("Connect returned error: %v", err)
	}

	if _, err := db.Insert(context.Background(), "flags", query.Set("on", true)); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}
}
