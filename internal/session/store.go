package session

import (
	"context"
	"errors"
	"sync"

	"traitcat/internal/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// Store owns session state between calls; the measurement engine itself is
// stateless. Durable persistence belongs to the surrounding system; this
// interface is the seam where it would plug in.
type Store interface {
	Save(ctx context.Context, sess *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// MemoryStore keeps sessions in process memory. Access to distinct sessions
// may be concurrent; within one session the caller drives a strictly
// sequential estimate-then-select chain.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*domain.Session)}
}

func (m *MemoryStore) Save(ctx context.Context, sess *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemoryStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}
