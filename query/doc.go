// Package query defines the operation descriptor, the caller's structured
// request before SQL translation, and the statement builder that turns a
// descriptor plus a dialect into SQL text with its ordered bound parameters.
//
// Build is a pure function: the same descriptor and dialect always produce
// the identical statement, byte for byte, and the builder performs no I/O.
package query
