// Package duckdb is the DuckDB facade: structured select, insert, update,
// delete, and raw operations over a single in-process session.
//
// DuckDB shares SQLite's call shape, including the ? placeholder style; an
// empty Path opens an in-memory database.
package duckdb
