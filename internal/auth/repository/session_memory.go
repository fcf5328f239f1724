package repository

import (
	"context"
	"sync"
	"time"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/auth/domain"
)

// MemorySessions keeps sessions in process. Expired entries are hidden on
// read and removed by Sweep.
type MemorySessions struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	now      func() time.Time
}

func NewMemorySessions() *MemorySessions {
	return &MemorySessions{sessions: make(map[string]domain.Session), now: time.Now}
}

// WithClock replaces the clock used for expiry checks.
func (m *MemorySessions) WithClock(now func() time.Time) *MemorySessions {
	m.now = now
	return m
}

func (m *MemorySessions) Save(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = *s
	return nil
}

func (m *MemorySessions) Get(_ context.Context, token string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[token]
	if !ok || s.Expired(m.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (m *MemorySessions) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

// Sweep drops expired sessions and reports how many were removed.
func (m *MemorySessions) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for token, s := range m.sessions {
		if s.Expired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed
}

func (m *MemorySessions) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
