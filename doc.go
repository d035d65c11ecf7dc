// Package directdb is a convenience layer for issuing CRUD-style operations
// against SQL databases by passing structured parameters instead of SQL text.
//
// The module is organized as one facade package per supported engine
// (postgres, sqlite, duckdb), all built from the same parts: the query
// package translates an operation descriptor into a parameterized statement,
// the dialect package supplies the engine-specific quoting and placeholder
// rules, the conn package owns a single serialized database session, and the
// engine package composes them and normalizes results.
//
// This root package holds the pieces shared by every facade: the error
// taxonomy and the normalized Record/Result types. Callers classify failures
// with errors.Is against the sentinels declared here.
//
//	res, err := db.Select(ctx, "users", engine.SelectOpts{
//		Filters: []query.Filter{query.Gt("age", 18)},
//	})
//	if errors.Is(err, directdb.ErrNotConnected) {
//		// connect first
//	}
package directdb
