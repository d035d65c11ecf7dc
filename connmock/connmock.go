package connmock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/directdb-project/directdb/conn"
)

var (
	// ErrUnexpectedStatement is returned when the statement text is not as expected.
	ErrUnexpectedStatement = errors.New("unexpected statement")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")

	// ErrSessionClosed is returned for calls that run after Close.
	ErrSessionClosed = errors.New("mock session closed")
)

// Call records one driver invocation.
type Call struct {
	// Op is "open", "query", "exec", or "close".
	Op string

	// Text is the statement text, empty for open and close.
	Text string

	// Params are the bound parameters, nil for open and close.
	Params []any
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedText, when non-empty, is validated against every statement.
	ExpectedText string

	// ParamsValidator validates the parameters passed with a statement.
	ParamsValidator func([]any) error

	// Response defines the result returned by Query.
	Response func() *conn.Result

	// Affected is the row count returned by Exec.
	Affected int64

	// Error is the error to return if the mock is configured to fail.
	Error error

	// Fail indicates whether Query and Exec should return an error.
	Fail bool

	// OpenError, when set, makes Open fail.
	OpenError error

	// Delay holds each Query and Exec call for the given duration, for
	// serialization tests.
	Delay time.Duration
}

// Mock simulates a database session with validation and configurable
// responses.
type Mock struct {
	cfg Config

	mu     sync.Mutex
	calls  []Call
	closed bool
}

var _ conn.Driver = (*Mock)(nil)

// New creates a new Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{cfg: config}, nil
}

// Calls returns a copy of the ordered call log.
func (m *Mock) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Closed reports whether Close has been called.
func (m *Mock) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Open simulates establishing the session.
func (m *Mock) Open(context.Context) error {
	m.record(Call{Op: "open"})
	if m.cfg.OpenError != nil {
		return m.cfg.OpenError
	}
	return nil
}

// Query simulates a row-returning statement.
func (m *Mock) Query(_ context.Context, text string, params []any) (*conn.Result, error) {
	m.record(Call{Op: "query", Text: text, Params: params})
	if err := m.common(text, params); err != nil {
		return nil, err
	}
	if m.cfg.Response != nil {
		return m.cfg.Response(), nil
	}
	return &conn.Result{}, nil
}

// Exec simulates a row-less statement.
func (m *Mock) Exec(_ context.Context, text string, params []any) (int64, error) {
	m.record(Call{Op: "exec", Text: text, Params: params})
	if err := m.common(text, params); err != nil {
		return 0, err
	}
	return m.cfg.Affected, nil
}

// Close marks the session closed. Later calls fail with ErrSessionClosed.
func (m *Mock) Close(context.Context) error {
	m.mu.Lock()
	m.closed = true
	m.calls = append(m.calls, Call{Op: "close"})
	m.mu.Unlock()
	return nil
}

func (m *Mock) record(c Call) {
	m.mu.Lock()
	m.calls = append(m.calls, c)
	m.mu.Unlock()
}

func (m *Mock) common(text string, params []any) error {
	if m.cfg.Delay > 0 {
		time.Sleep(m.cfg.Delay)
	}

	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return ErrSessionClosed
	}

	// Return user-defined error if Fail is set
	if m.cfg.Fail && m.cfg.Error != nil {
		return m.cfg.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.cfg.Fail {
		return ErrOperationFailed
	}

	if m.cfg.ExpectedText != "" && m.cfg.ExpectedText != text {
		return fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedStatement, m.cfg.ExpectedText, text)
	}

	if m.cfg.ParamsValidator != nil {
		if err := m.cfg.ParamsValidator(params); err != nil {
			return err
		}
	}
	return nil
}
