package session

import (
	"context"
	"sync"
	"time"

	"aviation-institute-api/internal/auth"
)

// MemoryStore keeps sessions in-process. Suitable for a single node and for
// tests; use RedisStore when sessions must survive restarts.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session // keyed by token hash
	ttl      time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	m := &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}
	// sweep expired entries every minute
	go func() {
		for {
			time.Sleep(time.Minute)
			now := time.Now()
			m.mu.Lock()
			for k, s := range m.sessions {
				if now.After(s.ExpiresAt) {
					delete(m.sessions, k)
				}
			}
			m.mu.Unlock()
		}
	}()
	return m
}

func (m *MemoryStore) Create(_ context.Context, username string) (string, error) {
	raw, hash, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	m.mu.Lock()
	m.sessions[hash] = &Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	m.mu.Unlock()
	return raw, nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	hash := auth.HashSessionToken(token)
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[hash]
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(s.ExpiresAt) {
		delete(m.sessions, hash)
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *MemoryStore) Destroy(_ context.Context, token string) error {
	hash := auth.HashSessionToken(token)
	m.mu.Lock()
	delete(m.sessions, hash)
	m.mu.Unlock()
	return nil
}
