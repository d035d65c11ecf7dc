package conn

import "context"

// Result is a driver's raw response to a query: column metadata plus rows as
// positional value slices. Types holds the engine's declared column type
// names when the driver exposes them, aligned with Columns; entries may be
// empty.
type Result struct {
	Columns []string
	Types   []string
	Rows    [][]any
}

// Driver is one live session to one database. Implementations wrap a single
// underlying connection and need not be safe for concurrent use; the Manager
// guarantees one call at a time.
type Driver interface {
	// Open establishes the session. Called at most once between Close calls.
	Open(ctx context.Context) error

	// Query runs a statement that returns rows.
	Query(ctx context.Context, text string, params []any) (*Result, error)

	// Exec runs a statement that returns no rows and reports the affected
	// row count.
	Exec(ctx context.Context, text string, params []any) (int64, error)

	// Close tears the session down. Safe to call concurrently with an
	// in-flight Query or Exec, which then fails.
	Close(ctx context.Context) error
}
