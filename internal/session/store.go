// Package session tracks which issued tokens are still live so logout can
// revoke them before they expire. The original design kept sessions in a
// process-local map; here they live in an external store with explicit TTL.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store registers issued tokens and answers whether one is still active.
type Store interface {
	Save(ctx context.Context, token string, userID int) error
	Active(ctx context.Context, token string) bool
	Revoke(ctx context.Context, token string) error
}

const keyPrefix = "session:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, token string, userID int) error {
	return s.rdb.Set(ctx, keyPrefix+token, userID, s.ttl).Err()
}

func (s *RedisStore) Active(ctx context.Context, token string) bool {
	n, err := s.rdb.Exists(ctx, keyPrefix+token).Result()
	return err == nil && n > 0
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// InMemoryStore backs the handler test suite.
type InMemoryStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	ttl      time.Duration
}

func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	return &InMemoryStore{sessions: map[string]time.Time{}, ttl: ttl}
}

func (s *InMemoryStore) Save(ctx context.Context, token string, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = time.Now().Add(s.ttl)
	return nil
}

func (s *InMemoryStore) Active(ctx context.Context, token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.sessions, token)
		return false
	}
	return true
}

func (s *InMemoryStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
