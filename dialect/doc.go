// Package dialect holds the per-engine SQL syntax rules: identifier quoting,
// positional placeholder generation, and scalar coercion between Go values
// and the representation the engine's driver accepts.
//
// Every function on a Dialect is pure. Supporting a new database engine means
// adding one more implementation here; no other package changes.
package dialect
