package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a token does not resolve to a live session,
// either because it was never issued, was destroyed, or expired.
var ErrNotFound = errors.New("session not found")

const tokenBytes = 32

// Store keeps opaque session tokens in redis, mapping token -> user id with a
// TTL. Tokens are random and carry no information themselves.
type Store struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewStore(client *redisv9.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Store{client: client, ttl: ttl}
}

func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, s.key(token), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session failed: %w", err)
	}
	return token, nil
}

func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(token)).Result()
	if err == redisv9.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get session failed: %w", err)
	}
	return userID, nil
}

func (s *Store) Destroy(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("redis delete session failed: %w", err)
	}
	return nil
}

func (s *Store) key(token string) string {
	return "session:" + token
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session token failed: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
