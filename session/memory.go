package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps sessions in process memory. Suitable for a single
// interactive process; transcripts are lost at exit.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (s *MemoryStore) Create() (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Rounds:    []Round{},
	}
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return sess, nil
}

func (s *MemoryStore) Append(id string, round Round) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	sess.Rounds = append(sess.Rounds, round)
	return nil
}

func (s *MemoryStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate the stored transcript.
	out := *sess
	out.Rounds = append([]Round(nil), sess.Rounds...)
	return &out, true
}
