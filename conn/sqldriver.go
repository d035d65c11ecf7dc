package conn

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// SQLDriver adapts any registered database/sql driver to the Driver
// interface through sqlx. The pool is pinned to a single open connection, so
// the Manager's serialization maps onto exactly one underlying session.
type SQLDriver struct {
	driverName string
	dsn        string
	db         *sqlx.DB
}

var _ Driver = (*SQLDriver)(nil)

// NewSQL creates a driver for a database/sql driver name and DSN. The
// session is not opened until Open is called.
func NewSQL(driverName, dsn string) *SQLDriver {
	return &SQLDriver{driverName: driverName, dsn: dsn}
}

// Open opens the database and verifies it is reachable.
func (d *SQLDriver) Open(ctx context.Context) error {
	db, err := sqlx.Open(d.driverName, d.dsn)
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}
	d.db = db
	return nil
}

// Query materializes a row-returning statement into a Result.
func (d *SQLDriver) Query(ctx context.Context, text string, params []any) (*Result, error) {
	rows, err := d.db.QueryxContext(ctx, text, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	types := make([]string, len(cols))
	if colTypes, err := rows.ColumnTypes(); err == nil {
		for i, ct := range colTypes {
			if i < len(types) {
				types[i] = ct.DatabaseTypeName()
			}
		}
	}

	res := &Result{Columns: cols, Types: types}
	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Exec runs a statement and reports the affected row count.
func (d *SQLDriver) Exec(ctx context.Context, text string, params []any) (int64, error) {
	res, err := d.db.ExecContext(ctx, text, params...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close closes the underlying database handle.
func (d *SQLDriver) Close(context.Context) error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
