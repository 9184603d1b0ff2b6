package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"careline/config"
)

const keyPrefix = "careline:sess:"

// RedisStore persists sessions in Redis as JSON blobs with a TTL, so a
// transcript survives process restarts for the lifetime of the key.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(cfg *config.SessionConfig) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("session: connect redis %s: %w", cfg.Redis.Addr, err)
	}

	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func (s *RedisStore) key(id string) string { return keyPrefix + id }

func (s *RedisStore) Create() (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Rounds:    []Round{},
	}
	if err := s.save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Append(id string, round Round) error {
	sess, ok := s.Get(id)
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	sess.Rounds = append(sess.Rounds, round)
	return s.save(sess)
}

func (s *RedisStore) Get(id string) (*Session, bool) {
	raw, err := s.rdb.Get(context.Background(), s.key(id)).Result()
	if err != nil {
		return nil, false
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

func (s *RedisStore) save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.rdb.Set(context.Background(), s.key(sess.ID), raw, s.ttl).Err()
}
