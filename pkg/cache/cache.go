// Package cache is a small JSON cache over Redis.
//
// A nil *Store is valid and caches nothing, so callers never branch on
// whether Redis is configured:
//
//	var dishes []models.Dish
//	if !menu.Get(ctx, "dishes", &dishes) {
//	    dishes = store.All()
//	    _ = menu.Set(ctx, "dishes", dishes, time.Minute)
//	}
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/grubdash/pkg/metrics"
)

// Client is the subset of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type Store struct {
	client Client
	prefix string
}

// New wraps client. Every key is stored under prefix.
func New(client Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Connect dials Redis at addr and verifies the connection with a ping.
// An empty addr returns a nil Store and no error.
func Connect(ctx context.Context, addr, password, prefix string) (*Store, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return New(rdb, prefix), nil
}

// Get reads key into dest. It returns true only on a hit that decodes.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if s == nil {
		return false
	}

	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil || json.Unmarshal(val, dest) != nil {
		metrics.CacheMisses.WithLabelValues(key).Inc()
		return false
	}
	metrics.CacheHits.WithLabelValues(key).Inc()
	return true
}

// Set stores value under key for ttl. A zero ttl never expires.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if s == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+key, data, ttl).Err()
}

// Forget removes keys. Missing keys are not an error.
func (s *Store) Forget(ctx context.Context, keys ...string) error {
	if s == nil || len(keys) == 0 {
		return nil
	}

	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.prefix + k
	}
	err := s.client.Del(ctx, full...).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}

func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.client.Close()
}

// Enabled reports whether s is backed by Redis.
func (s *Store) Enabled() bool { return s != nil }

// Ping checks the Redis connection. A nil Store has nothing to check.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil {
		return nil
	}
	return s.client.Ping(ctx).Err()
}
