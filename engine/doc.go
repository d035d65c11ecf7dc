// Package engine composes the statement builder, dialect rules, and
// connection manager into the operation surface the facades expose: build a
// statement from a descriptor, dispatch it over the serialized session, and
// normalize the driver's response into directdb.Result records.
//
// Writes report their affected-row count as a single synthetic record
// {"affected": n}, so "ran, touched 0 rows" and "ran, touched N rows" look
// the same across statement kinds.
//
// The engine provides no multi-statement transaction coordination. A caller
// issuing BEGIN/COMMIT through Raw is issuing sequential independent
// statements; nothing here makes them atomic.
package engine
