package repomanager

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/devopschat/internal/server/config"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/messages"
	"github.com/dmitrijs2005/devopschat/internal/server/repositories/users"
	"github.com/sethvargo/go-retry"
)

// OpenFunc connects to a backend and prepares it for use.
type OpenFunc func(ctx context.Context) (RepositoryManager, error)

var errManagerClosed = errors.New("repository manager closed")

type managerState struct {
	m    RepositoryManager
	live bool
}

// ReconnectingRepositoryManager serves from an UnavailableRepositoryManager
// until the backend can be opened, then switches to the live manager for
// good. Every Ping while degraded is a dial attempt; Recover keeps dialing
// in the background.
type ReconnectingRepositoryManager struct {
	backend string
	open    OpenFunc
	state   atomic.Pointer[managerState]

	mu     sync.Mutex
	closed bool
}

// NewReconnecting returns a degraded manager for cfg that reconnects with New.
func NewReconnecting(cfg *config.Config, cause error) *ReconnectingRepositoryManager {
	return newReconnecting(cfg.StorageBackend, cause, func(ctx context.Context) (RepositoryManager, error) {
		return New(ctx, cfg)
	})
}

func newReconnecting(backend string, cause error, open OpenFunc) *ReconnectingRepositoryManager {
	m := &ReconnectingRepositoryManager{backend: backend, open: open}
	m.state.Store(&managerState{m: NewUnavailableRepositoryManager(backend, cause)})
	return m
}

func (m *ReconnectingRepositoryManager) current() *managerState { return m.state.Load() }

// Live reports whether the backend has been reached.
func (m *ReconnectingRepositoryManager) Live() bool { return m.current().live }

func (m *ReconnectingRepositoryManager) Users() users.Repository { return m.current().m.Users() }
func (m *ReconnectingRepositoryManager) Messages() messages.Repository {
	return m.current().m.Messages()
}
func (m *ReconnectingRepositoryManager) Backend() string { return m.backend }

func (m *ReconnectingRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.current().m.RunMigrations(ctx)
}

// Ping checks the live backend. While degraded it makes a dial attempt
// unless one is already running, in which case it reports the last failure.
func (m *ReconnectingRepositoryManager) Ping(ctx context.Context) error {
	if s := m.current(); s.live {
		return s.m.Ping(ctx)
	}
	if !m.mu.TryLock() {
		return m.current().m.Ping(ctx)
	}
	defer m.mu.Unlock()
	return m.reconnectLocked(ctx)
}

func (m *ReconnectingRepositoryManager) reconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reconnectLocked(ctx)
}

// reconnectLocked makes one attempt to open the backend. The latest failure
// replaces the stored cause so callers see the current error.
func (m *ReconnectingRepositoryManager) reconnectLocked(ctx context.Context) error {
	if m.closed {
		return errManagerClosed
	}
	if m.current().live {
		return nil
	}

	rm, err := m.open(ctx)
	if err != nil {
		down := NewUnavailableRepositoryManager(m.backend, err)
		m.state.Store(&managerState{m: down})
		return down.err
	}

	m.state.Store(&managerState{m: rm, live: true})
	return nil
}

// Recover dials with backoff until the backend is reached, ctx ends or the
// manager is closed.
func (m *ReconnectingRepositoryManager) Recover(ctx context.Context, b retry.Backoff) error {
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := m.reconnect(ctx)
		if err == nil || errors.Is(err, errManagerClosed) {
			return err
		}
		return retry.RetryableError(err)
	})
}

// RecoveryBackoff is the schedule App uses for Recover.
func RecoveryBackoff() retry.Backoff {
	return retry.WithCappedDuration(30*time.Second, retry.NewExponential(time.Second))
}

func (m *ReconnectingRepositoryManager) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return m.current().m.Close(ctx)
}

var _ RepositoryManager = (*ReconnectingRepositoryManager)(nil)
