// Package session records chat transcripts for the interactive loop.
// Storage is best-effort; a failing store never blocks query handling.
package session

import (
	"fmt"
	"time"

	"careline/config"
	"careline/schema"
)

// Round is one question/answer exchange.
type Round struct {
	Question  string        `json:"question"`
	Answer    string        `json:"answer"`
	Intent    schema.Intent `json:"intent"`
	Timestamp time.Time     `json:"timestamp"`
}

// Session is a chat transcript.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Rounds    []Round   `json:"rounds"`
}

// Store persists sessions.
type Store interface {
	Create() (*Session, error)
	Append(id string, round Round) error
	Get(id string) (*Session, bool)
}

// New builds the configured store. A nil config yields the in-memory
// store.
func New(cfg *config.SessionConfig) (Store, error) {
	if cfg == nil || cfg.Store == "" || cfg.Store == "inmemory" {
		return NewMemoryStore(), nil
	}
	if cfg.Store == "redis" {
		return NewRedisStore(cfg)
	}
	return nil, fmt.Errorf("unknown session store %q", cfg.Store)
}
