package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/greenbites/greenbites-backend/pkg/config"
)

// Manager tracks live access-token sessions in process memory. The service
// targets a single local instance with no external collaborators, so there is
// no shared session store; logout works by revoking the token's jti here.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
	now      func() time.Time
}

// AccessSessionChecker exposes the read-only surface needed by middleware.
type AccessSessionChecker interface {
	HasSession(ctx context.Context, accessID string) (bool, error)
}

// NewManager constructs an in-memory session registry sized to the access
// token TTL.
func NewManager(cfg config.JWTConfig) (*Manager, error) {
	ttl := cfg.AccessTokenTTL()
	if ttl <= 0 {
		return nil, fmt.Errorf("access token ttl must be positive")
	}
	return &Manager{
		sessions: make(map[string]time.Time),
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// NewAccessID returns a fresh session identifier for the JWT jti claim.
func NewAccessID() string {
	return uuid.NewString()
}

// Register records a new live session for the provided access ID.
func (m *Manager) Register(_ context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return fmt.Errorf("access id is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prune()
	m.sessions[accessID] = m.now().Add(m.ttl)
	return nil
}

// HasSession reports whether the access ID refers to a live session.
func (m *Manager) HasSession(_ context.Context, accessID string) (bool, error) {
	if strings.TrimSpace(accessID) == "" {
		return false, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	expiry, ok := m.sessions[accessID]
	if !ok {
		return false, nil
	}
	if m.now().After(expiry) {
		delete(m.sessions, accessID)
		return false, nil
	}
	return true, nil
}

// Revoke ends the session for the provided access ID. Revoking an unknown
// session is a no-op.
func (m *Manager) Revoke(_ context.Context, accessID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, accessID)
	return nil
}

// prune drops expired entries; callers must hold the lock.
func (m *Manager) prune() {
	now := m.now()
	for id, expiry := range m.sessions {
		if now.After(expiry) {
			delete(m.sessions, id)
		}
	}
}
