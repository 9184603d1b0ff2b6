package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/config"
	"careline/schema"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	sess, err := s.Create()
	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.Empty(t, sess.Rounds)

	round := Round{
		Question:  "What are your hours?",
		Answer:    "We are open 8-6 on weekdays.",
		Intent:    schema.IntentFAQ,
		Timestamp: time.Now(),
	}
	require.NoError(t, s.Append(sess.ID, round))

	got, ok := s.Get(sess.ID)
	require.True(t, ok)
	require.Len(t, got.Rounds, 1)
	assert.Equal(t, round.Question, got.Rounds[0].Question)
	assert.Equal(t, round.Intent, got.Rounds[0].Intent)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	sess, _ := s.Create()
	require.NoError(t, s.Append(sess.ID, Round{Question: "q1"}))

	got, _ := s.Get(sess.ID)
	got.Rounds[0].Question = "mutated"
	got.Rounds = append(got.Rounds, Round{Question: "q2"})

	again, _ := s.Get(sess.ID)
	require.Len(t, again.Rounds, 1)
	assert.Equal(t, "q1", again.Rounds[0].Question)
}

func TestMemoryStore_UnknownSession(t *testing.T) {
	s := NewMemoryStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
	assert.Error(t, s.Append("nope", Round{}))
}

func TestNew_StoreSelection(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		s, err := New(nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
	})

	t.Run("inmemory", func(t *testing.T) {
		s, err := New(&config.SessionConfig{Store: "inmemory"})
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, s)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(&config.SessionConfig{Store: "dynamo"})
		assert.Error(t, err)
	})
}
