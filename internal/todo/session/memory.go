package session

import (
	"context"
	"sync"
	"time"

	"github.com/aussiebroadwan/todo/internal/todo/domain"
)

// MemoryStore keeps sessions in process memory. Sessions are lost on restart
// and are not shared between replicas.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]domain.Session),
		now:      time.Now,
	}
}

// WithClock overrides the clock used to hide expired sessions. Tests only.
func (m *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	m.now = now
	return m
}

func (m *MemoryStore) Get(_ context.Context, key string) (domain.Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[key]
	m.mu.RUnlock()

	if !ok || s.Expired(m.now()) {
		return domain.Session{}, ErrNotFound
	}
	return s, nil
}

func (m *MemoryStore) Set(_ context.Context, s domain.Session) error {
	m.mu.Lock()
	m.sessions[s.Key] = s
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, key)
			removed++
		}
	}
	return removed, nil
}

func (m *MemoryStore) Ping(context.Context) error { return nil }
