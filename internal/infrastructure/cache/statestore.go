package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StateInfo stores state-related information for the OAuth flow.
type StateInfo struct {
	Provider     string    `json:"provider"`
	CodeVerifier string    `json:"code_verifier"`
	CreatedAt    time.Time `json:"created_at"`
}

// RedisStateStore provides Redis-based state storage for OAuth flows.
type RedisStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStateStore creates a new RedisStateStore instance.
func NewRedisStateStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStateStore {
	return &RedisStateStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Set stores state, provider and code_verifier in Redis with TTL. The code
// verifier may be empty for providers that do not support PKCE.
func (s *RedisStateStore) Set(ctx context.Context, state, provider, codeVerifier string) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if provider == "" {
		return errors.New("provider cannot be empty")
	}

	stateInfo := StateInfo{
		Provider:     provider,
		CodeVerifier: codeVerifier,
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(stateInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal state info: %w", err)
	}

	key := s.buildKey(state)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state in redis: %w", err)
	}

	return nil
}

// VerifyAndGet verifies state exists and retrieves the code_verifier.
// GETDEL gets and deletes the key atomically, so each state is one-time
// use and replays fail.
func (s *RedisStateStore) VerifyAndGet(ctx context.Context, state string) (*StateInfo, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	key := s.buildKey(state)

	data, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("state not found or expired")
		}
		return nil, fmt.Errorf("failed to retrieve state from redis: %w", err)
	}

	var stateInfo StateInfo
	if err := json.Unmarshal([]byte(data), &stateInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state info: %w", err)
	}

	return &stateInfo, nil
}

// buildKey constructs the full Redis key with prefix
func (s *RedisStateStore) buildKey(state string) string {
	return s.prefix + state
}
