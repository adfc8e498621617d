package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the key does not exist or Redis is down.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON loads a key and unmarshals the cached JSON into dest.
func GetJSON(ctx context.Context, key string, dest any) error {
	c := GetClient()
	if c == nil {
		return ErrCacheMiss
	}
	raw, err := c.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// SetJSON marshals value to JSON and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	c := GetClient()
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl).Err()
}

// Delete removes keys from the cache. A nil client is a no-op.
func Delete(ctx context.Context, keys ...string) {
	c := GetClient()
	if c == nil || len(keys) == 0 {
		return
	}
	c.Del(ctx, keys...)
}

// Aside implements the cache-aside pattern: return the cached value under
// key if present, otherwise call load, cache the result, and return it.
// Cache failures degrade to calling load directly.
func Aside[T any](ctx context.Context, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	var cached T
	if err := GetJSON(ctx, key, &cached); err == nil {
		return cached, nil
	}
	fresh, err := load()
	if err != nil {
		return fresh, err
	}
	_ = SetJSON(ctx, key, fresh, ttl)
	return fresh, nil
}
