package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aviation-institute-api/internal/auth"
)

const redisKeyPrefix = "session:"

// RedisStore persists sessions in redis with a TTL, so they survive process
// restarts and expire without a janitor.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// NewRedisClient connects to redis with short timeouts.
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

func (r *RedisStore) Create(ctx context.Context, username string) (string, error) {
	raw, hash, err := auth.GenerateSessionToken()
	if err != nil {
		return "", err
	}
	now := time.Now()
	s := Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, redisKeyPrefix+hash, payload, r.ttl).Err(); err != nil {
		return "", fmt.Errorf("session: redis set: %w", err)
	}
	return raw, nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	hash := auth.HashSessionToken(token)
	payload, err := r.client.Get(ctx, redisKeyPrefix+hash).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: redis get: %w", err)
	}
	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	return &s, nil
}

func (r *RedisStore) Destroy(ctx context.Context, token string) error {
	hash := auth.HashSessionToken(token)
	if err := r.client.Del(ctx, redisKeyPrefix+hash).Err(); err != nil {
		return fmt.Errorf("session: redis del: %w", err)
	}
	return nil
}
