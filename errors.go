package directdb

import "errors"

var (
	// ErrValidation indicates a malformed descriptor or argument. The fault
	// is the caller's; the operation was never sent to the database.
	ErrValidation = errors.New("validation failed")

	// ErrNotConnected is returned when an operation is attempted outside the
	// Connected state. No I/O is performed.
	ErrNotConnected = errors.New("not connected")

	// ErrConnection indicates a network or authentication failure while
	// connecting. The library does not retry; reconnect policy is the
	// caller's.
	ErrConnection = errors.New("connection failed")

	// ErrExecution means the database rejected the statement. The driver's
	// underlying error is joined and preserved.
	ErrExecution = errors.New("statement execution failed")

	// ErrClosed is returned for operations interrupted or attempted after an
	// explicit close, including operations that were queued when close was
	// called.
	ErrClosed = errors.New("connection closed")
)
