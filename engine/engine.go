package engine

import (
	"context"
	"fmt"

	directdb "github.com/directdb-project/directdb"
	"github.com/directdb-project/directdb/conn"
	"github.com/directdb-project/directdb/dialect"
	"github.com/directdb-project/directdb/query"
)

// Engine executes operation descriptors against one managed session.
type Engine struct {
	mgr *conn.Manager
	dl  dialect.Dialect
}

// New creates an engine bound to a connection manager and a dialect.
func New(mgr *conn.Manager, dl dialect.Dialect) *Engine {
	return &Engine{mgr: mgr, dl: dl}
}

// SelectOpts carries the optional parts of a select: filters, projection,
// ordering, and limit. The zero value selects every column of every row.
type SelectOpts struct {
	Filters []query.Filter
	Columns []string
	OrderBy []query.Order
	Limit   int
}

// UpdateOpts carries the filters for an update. An update with no filters
// touches the whole table and must be requested explicitly with AllRows.
type UpdateOpts struct {
	Filters []query.Filter
	AllRows bool
}

// DeleteOpts carries the filters for a delete. A delete with no filters
// empties the table and must be requested explicitly with AllRows.
type DeleteOpts struct {
	Filters []query.Filter
	AllRows bool
}

// Run builds the descriptor's statement, dispatches it, and normalizes the
// response. It is the low-level path under every ergonomic method; a
// descriptor handed to Run directly carries no unfiltered-write guard, since
// building one is itself the explicit choice.
func (e *Engine) Run(ctx context.Context, d query.Descriptor) (directdb.Result, error) {
	stmt, err := query.Build(d, e.dl)
	if err != nil {
		return nil, err
	}

	switch d.Kind {
	case query.KindSelect, query.KindRaw:
		raw, err := e.mgr.Query(ctx, stmt.Text, stmt.Params)
		if err != nil {
			return nil, err
		}
		return e.normalize(raw), nil
	case query.KindCreateTable, query.KindDropTable:
		if _, err := e.mgr.Exec(ctx, stmt.Text, stmt.Params); err != nil {
			return nil, err
		}
		return directdb.Result{}, nil
	default:
		n, err := e.mgr.Exec(ctx, stmt.Text, stmt.Params)
		if err != nil {
			return nil, err
		}
		return directdb.Result{directdb.Record{directdb.AffectedColumn: n}}, nil
	}
}

// Select fetches rows from a table.
func (e *Engine) Select(ctx context.Context, table string, opts SelectOpts) (directdb.Result, error) {
	return e.Run(ctx, query.Descriptor{
		Kind:       query.KindSelect,
		Table:      table,
		Filters:    opts.Filters,
		Projection: opts.Columns,
		OrderBy:    opts.OrderBy,
		Limit:      opts.Limit,
	})
}

// Insert adds one row built from the given assignments.
func (e *Engine) Insert(ctx context.Context, table string, assignments ...query.Assignment) (directdb.Result, error) {
	return e.Run(ctx, query.Descriptor{
		Kind:        query.KindInsert,
		Table:       table,
		Assignments: assignments,
	})
}

// Update modifies the rows matched by the filters.
func (e *Engine) Update(ctx context.Context, table string, assignments []query.Assignment, opts UpdateOpts) (directdb.Result, error) {
	if err := checkFiltered("update", opts.Filters, opts.AllRows); err != nil {
		return nil, err
	}
	return e.Run(ctx, query.Descriptor{
		Kind:        query.KindUpdate,
		Table:       table,
		Assignments: assignments,
		Filters:     opts.Filters,
	})
}

// Delete removes the rows matched by the filters.
func (e *Engine) Delete(ctx context.Context, table string, opts DeleteOpts) (directdb.Result, error) {
	if err := checkFiltered("delete", opts.Filters, opts.AllRows); err != nil {
		return nil, err
	}
	return e.Run(ctx, query.Descriptor{
		Kind:    query.KindDelete,
		Table:   table,
		Filters: opts.Filters,
	})
}

// Raw executes caller-supplied SQL with its parameters unchanged. An escape
// hatch; the only check is placeholder/parameter count consistency.
func (e *Engine) Raw(ctx context.Context, sql string, params ...any) (directdb.Result, error) {
	return e.Run(ctx, query.Descriptor{Kind: query.KindRaw, SQL: sql, Params: params})
}

// CreateTable creates a table if it does not exist.
func (e *Engine) CreateTable(ctx context.Context, table string, columns ...query.ColumnDef) error {
	_, err := e.Run(ctx, query.Descriptor{Kind: query.KindCreateTable, Table: table, Columns: columns})
	return err
}

// DropTable drops a table if it exists.
func (e *Engine) DropTable(ctx context.Context, table string) error {
	_, err := e.Run(ctx, query.Descriptor{Kind: query.KindDropTable, Table: table})
	return err
}

func checkFiltered(op string, filters []query.Filter, allRows bool) error {
	if len(filters) == 0 && !allRows {
		return fmt.Errorf("%w: unfiltered %s touches every row; set AllRows to confirm", directdb.ErrValidation, op)
	}
	return nil
}

// normalize maps a driver response onto Result records, decoding each value
// through the dialect's inverse bind coercion.
func (e *Engine) normalize(raw *conn.Result) directdb.Result {
	out := make(directdb.Result, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		rec := make(directdb.Record, len(raw.Columns))
		for i, col := range raw.Columns {
			if i >= len(row) {
				continue
			}
			colType := ""
			if i < len(raw.Types) {
				colType = raw.Types[i]
			}
			rec[col] = e.dl.DecodeValue(colType, row[i])
		}
		out = append(out, rec)
	}
	return out
}
