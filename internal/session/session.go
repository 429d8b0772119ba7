// Package session owns the process-wide token/user pair. Every resource
// client reads it; only the login flow and the 401 expiry handler write it,
// each through the Manager, so an expiry cannot race a fresh login into an
// inconsistent half-cleared state.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/aldawaly/go-backoffice/internal/logging"
	"github.com/aldawaly/go-backoffice/internal/permissions"
	"github.com/aldawaly/go-backoffice/pkg/interfaces"
)

var (
	ErrNoSession    = errors.New("session: no active session")
	ErrTokenMissing = errors.New("session: token is required")
)

// Snapshot is the persisted session state.
type Snapshot struct {
	Token string
	User  *permissions.User
}

// Store persists a snapshot across restarts. Load returns ErrNoSession when
// nothing is stored.
type Store interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snapshot Snapshot) error
	Clear(ctx context.Context) error
}

// Manager is the single read/write interface over the stored session.
type Manager struct {
	mu      sync.RWMutex
	current *Snapshot

	store  Store
	logger interfaces.Logger
}

var (
	_ interfaces.TokenSource    = (*Manager)(nil)
	_ interfaces.SessionExpirer = (*Manager)(nil)
)

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger injects the session lifecycle logger.
func WithLogger(logger interfaces.Logger) ManagerOption {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager builds a manager over the given store and loads any persisted
// session so a restarted process resumes authenticated.
func NewManager(ctx context.Context, store Store, opts ...ManagerOption) (*Manager, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	m := &Manager{
		store:  store,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(m)
	}

	snapshot, err := store.Load(ctx)
	switch {
	case err == nil:
		m.current = &snapshot
	case errors.Is(err, ErrNoSession):
		// cold start
	default:
		return nil, err
	}
	return m, nil
}

// Token returns the bearer token, or "" when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *permissions.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	return m.current.User
}

// Login stores a fresh session after a successful authentication call.
func (m *Manager) Login(ctx context.Context, token string, user *permissions.User) error {
	if token == "" {
		return ErrTokenMissing
	}
	snapshot := Snapshot{Token: token, User: user}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(ctx, snapshot); err != nil {
		return err
	}
	m.current = &snapshot
	m.logger.Info("session.login", "user", userID(user))
	return nil
}

// Logout clears the session on explicit user action.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return nil
	}
	if err := m.store.Clear(ctx); err != nil {
		return err
	}
	m.current = nil
	m.logger.Info("session.logout")
	return nil
}

// HandleExpiry clears the session after the backend reported a 401. It is
// idempotent: concurrent expiries from parallel in-flight calls clear once
// and the rest are no-ops.
func (m *Manager) HandleExpiry(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return
	}
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error("session.expiry.clear_failed", "error", err)
	}
	m.current = nil
	m.logger.Warn("session.expired")
}

func userID(user *permissions.User) string {
	if user == nil {
		return ""
	}
	return user.ID
}
