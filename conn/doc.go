// Package conn owns the single database session behind a facade instance.
//
// The Driver interface is the transport boundary: one implementation per
// database driver, plus the connmock package for tests. Drivers are not
// required to be safe for concurrent use; the Manager serializes every
// operation over the one live session, strictly first requested, first
// served, and fails queued operations when the manager is closed.
package conn
