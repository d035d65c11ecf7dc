// Package connmock provides a mock conn.Driver for testing facades and the
// execution engine without a live database. The mock validates the statement
// and parameters it receives, returns configurable responses or failures,
// and keeps an ordered log of every call for serialization assertions.
package connmock
