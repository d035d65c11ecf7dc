package duckdb

import (
	"context"

	_ "github.com/duckdb/duckdb-go/v2"

	directdb "github.com/directdb-project/directdb"
	"github.com/directdb-project/directdb/conn"
	"github.com/directdb-project/directdb/dialect"
	"github.com/directdb-project/directdb/engine"
	"github.com/directdb-project/directdb/query"
)

// Client defines the DuckDB facade surface.
type Client interface {
	// Connect establishes the database session.
	Connect(ctx context.Context) error

	// Close tears the session down, failing queued operations.
	Close(ctx context.Context) error

	// Select fetches rows from a table.
	Select(ctx context.Context, table string, opts engine.SelectOpts) (directdb.Result, error)

	// Insert adds one row built from the given assignments.
	Insert(ctx context.Context, table string, assignments ...query.Assignment) (directdb.Result, error)

	// Update modifies the rows matched by the filters.
	Update(ctx context.Context, table string, assignments []query.Assignment, opts engine.UpdateOpts) (directdb.Result, error)

	// Delete removes the rows matched by the filters.
	Delete(ctx context.Context, table string, opts engine.DeleteOpts) (directdb.Result, error)

	// Raw executes caller-supplied SQL with its parameters unchanged.
	Raw(ctx context.Context, sql string, params ...any) (directdb.Result, error)

	// Run executes a hand-built operation descriptor.
	Run(ctx context.Context, d query.Descriptor) (directdb.Result, error)

	// CreateTable creates a table if it does not exist.
	CreateTable(ctx context.Context, table string, columns ...query.ColumnDef) error

	// DropTable drops a table if it exists.
	DropTable(ctx context.Context, table string) error
}

// Config describes the DuckDB database.
type Config struct {
	// Path is the database file path. Empty opens an in-memory database, as
	// DuckDB itself defines.
	Path string

	// Driver overrides the duckdb-backed session, used in tests.
	Driver conn.Driver
}

// DB is the DuckDB facade implementation.
type DB struct {
	*engine.Engine
	mgr *conn.Manager
}

var _ Client = (*DB)(nil)

// New creates an unconnected facade.
func New(config Config) (*DB, error) {
	driver := config.Driver
	if driver == nil {
		driver = conn.NewSQL("duckdb", config.Path)
	}

	mgr := conn.NewManager(driver)
	return &DB{Engine: engine.New(mgr, dialect.DuckDB()), mgr: mgr}, nil
}

// Connect establishes the database session.
func (db *DB) Connect(ctx context.Context) error { return db.mgr.Connect(ctx) }

// Close tears the session down, failing queued operations.
func (db *DB) Close(ctx context.Context) error { return db.mgr.Close(ctx) }
