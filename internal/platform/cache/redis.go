// Copyright (c) 2026 OpenJam. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements [Cache] on top of a go-redis client.
type Redis struct {
	client redis.Cmdable
}

// NewRedis creates a Redis-backed cache.
func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client}
}

/*
Get retrieves the value stored under key.

Parameters:
  - context: context.Context
  - key: string

Returns:
  - []byte: The stored value
  - bool: false on a miss or an expired key
  - error: Connectivity errors
*/
func (cache *Redis) Get(context context.Context, key string) ([]byte, bool, error) {
	value, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_cache_get_failed: %w", err)
	}
	return value, true, nil
}

// Set implements [Cache].
func (cache *Redis) Set(context context.Context, key string, value []byte, ttl time.Duration) error {
	if err := cache.client.Set(context, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis_cache_set_failed: %w", err)
	}
	return nil
}

// Delete implements [Cache].
func (cache *Redis) Delete(context context.Context, key string) error {
	if err := cache.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_cache_delete_failed: %w", err)
	}
	return nil
}
