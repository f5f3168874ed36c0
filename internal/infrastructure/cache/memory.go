package cache

import (
	"context"
	"sync"
	"time"

	"gamebuddy-user/internal/domain/user"

	"github.com/google/uuid"
)

// MemoryUserCache is an in-process user.Cache used in tests and in
// single-instance deployments without Redis.
type MemoryUserCache struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	view      user.View
	expiresAt time.Time
}

func NewMemoryUserCache() *MemoryUserCache {
	return &MemoryUserCache{
		entries: make(map[uuid.UUID]memoryEntry),
	}
}

func (m *MemoryUserCache) GetView(_ context.Context, id uuid.UUID) (*user.View, error) {
	m.mu.RLock()
	entry, ok := m.entries[id]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, id)
		m.mu.Unlock()
		return nil, nil
	}

	view := entry.view
	return &view, nil
}

func (m *MemoryUserCache) SetView(_ context.Context, view *user.View, ttl time.Duration) error {
	entry := memoryEntry{view: *view}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[view.UserID] = entry
	m.mu.Unlock()

	return nil
}

func (m *MemoryUserCache) Invalidate(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	delete(m.entries, id)
	m.mu.Unlock()

	return nil
}

var _ user.Cache = (*MemoryUserCache)(nil)
