package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jobmatch/jobmatch-api/internal/core/domain"
)

// SessionStore keeps opaque session tokens in Redis.
// Key format: session:<token>, value is the identity as JSON, expiring after
// the configured TTL. Revoking deletes the key, so logout takes effect on the
// very next request.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func (s *SessionStore) Issue(ctx context.Context, ident domain.Identity) (string, error) {
	payload, err := json.Marshal(ident)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.key(token), payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *SessionStore) Resolve(ctx context.Context, token string) (*domain.Identity, error) {
	payload, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}

	var ident domain.Identity
	if err := json.Unmarshal(payload, &ident); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &ident, nil
}

func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return "session:" + token
}
