package tokendeny

import (
	"context"
	"sync"
	"time"
)

// Denylist records logged-out bearer tokens until their natural expiry.
// The auth middleware consults it on every protected request.
type Denylist interface {
	Deny(ctx context.Context, token string, ttl time.Duration) error
	IsDenied(ctx context.Context, token string) (bool, error)
}

type entry struct {
	expiresAt time.Time
}

// MemoryDenylist is the single-process fallback used when no redis
// address is configured, and by tests.
type MemoryDenylist struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewMemoryDenylist() *MemoryDenylist {
	return &MemoryDenylist{
		data: make(map[string]entry),
	}
}

func (m *MemoryDenylist) Deny(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[token] = entry{expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *MemoryDenylist) IsDenied(ctx context.Context, token string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.data[token]
	if !ok {
		return false, nil
	}
	if time.Now().After(e.expiresAt) {
		delete(m.data, token) // cleanup expired
		return false, nil
	}
	return true, nil
}
