package conn

import (
	"context"
	"errors"
	"fmt"
	"sync"

	directdb "github.com/directdb-project/directdb"
)

// State is the lifecycle state of a Manager.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
	Closed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Manager owns one Driver session and its lifecycle. Operations on the
// session are serialized in arrival order; see package doc. A closed Manager
// stays closed, and a failed connect returns to Disconnected so the caller
// decides whether to retry.
type Manager struct {
	driver Driver

	mu    sync.Mutex
	state State

	// sem is the capacity-one execution slot. Goroutines blocked sending
	// into it are released in arrival order by the runtime, which is what
	// gives strict first-requested-first-served execution.
	sem chan struct{}

	// done is closed once on Close and aborts every queued operation.
	done chan struct{}
}

// NewManager wraps a driver session in a Manager. The manager starts
// Disconnected.
func NewManager(d Driver) *Manager {
	return &Manager{
		driver: d,
		sem:    make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// State reports the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect establishes the session. Connecting an already-connected manager
// is a no-op returning success. A failed connect leaves the manager
// Disconnected; the library never retries on its own.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case Connected:
		m.mu.Unlock()
		return nil
	case Closed:
		m.mu.Unlock()
		return fmt.Errorf("%w: manager is closed", directdb.ErrClosed)
	case Connecting:
		m.mu.Unlock()
		return fmt.Errorf("%w: connect already in progress", directdb.ErrConnection)
	}
	m.state = Connecting
	m.mu.Unlock()

	err := m.driver.Open(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		if m.state == Connecting {
			m.state = Disconnected
		}
		return errors.Join(directdb.ErrConnection, err)
	}
	if m.state == Closed {
		// Close won the race; the fresh session must not leak.
		_ = m.driver.Close(context.Background())
		return fmt.Errorf("%w: closed during connect", directdb.ErrClosed)
	}
	m.state = Connected
	return nil
}

// Close tears the session down. Every queued operation and the in-flight one
// fail with directdb.ErrClosed. Closing a manager that never connected fails
// with directdb.ErrNotConnected; closing twice is a no-op.
func (m *Manager) Close(ctx context.Context) error {
	m.mu.Lock()
	switch m.state {
	case Closed:
		m.mu.Unlock()
		return nil
	case Disconnected:
		m.mu.Unlock()
		return fmt.Errorf("%w: nothing to close", directdb.ErrNotConnected)
	}
	wasConnected := m.state == Connected
	m.state = Closed
	close(m.done)
	m.mu.Unlock()

	if !wasConnected {
		// Still Connecting; the connect call tears the session down when it
		// observes the Closed state.
		return nil
	}
	if err := m.driver.Close(ctx); err != nil {
		return errors.Join(directdb.ErrConnection, err)
	}
	return nil
}

// Query runs a row-returning statement over the session.
func (m *Manager) Query(ctx context.Context, text string, params []any) (*Result, error) {
	if err := m.acquire(ctx); err != nil {
		return nil, err
	}
	defer m.release()

	if err := m.requireConnected(); err != nil {
		return nil, err
	}
	res, err := m.driver.Query(ctx, text, params)
	if err != nil {
		return nil, m.executionError(err)
	}
	return res, nil
}

// Exec runs a statement that returns no rows and reports the affected count.
func (m *Manager) Exec(ctx context.Context, text string, params []any) (int64, error) {
	if err := m.acquire(ctx); err != nil {
		return 0, err
	}
	defer m.release()

	if err := m.requireConnected(); err != nil {
		return 0, err
	}
	n, err := m.driver.Exec(ctx, text, params)
	if err != nil {
		return 0, m.executionError(err)
	}
	return n, nil
}

func (m *Manager) acquire(ctx context.Context) error {
	select {
	case m.sem <- struct{}{}:
		return nil
	case <-m.done:
		return fmt.Errorf("%w: operation aborted", directdb.ErrClosed)
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) release() { <-m.sem }

// requireConnected runs with the execution slot held, so no I/O is ever
// attempted outside the Connected state.
func (m *Manager) requireConnected() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case Connected:
		return nil
	case Closed:
		return fmt.Errorf("%w: operation aborted", directdb.ErrClosed)
	default:
		return fmt.Errorf("%w: connect before executing", directdb.ErrNotConnected)
	}
}

// executionError classifies a driver failure: interrupted by an explicit
// close, or rejected by the database.
func (m *Manager) executionError(err error) error {
	select {
	case <-m.done:
		return errors.Join(directdb.ErrClosed, err)
	default:
		return errors.Join(directdb.ErrExecution, err)
	}
}
