// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// response.go provides a Valkey-backed cache for public JSON responses.
// Public list and lookup endpoints store their encoded body here so repeated
// requests skip the database. Any admin write clears the whole cache, since a
// single tutorial can appear in many listings.
package cache

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached responses.
	responseKeyPrefix = "public:"

	// DefaultResponseTTL is how long a response stays cached.
	DefaultResponseTTL = 5 * time.Minute
)

// Observer is notified of cache lookups. metrics.Metrics satisfies it.
type Observer interface {
	CacheHit()
	CacheMiss()
}

// ResponseCache stores encoded public responses in Valkey. A nil
// *ResponseCache is valid and caches nothing.
type ResponseCache struct {
	client   *redis.Client
	ttl      time.Duration
	observer Observer
}

// NewResponseCache creates a response cache backed by the given client. A
// zero ttl selects DefaultResponseTTL. observer may be nil.
func NewResponseCache(client *redis.Client, ttl time.Duration, observer Observer) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	return &ResponseCache{client: client, ttl: ttl, observer: observer}
}

// Get returns the cached body for key.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if rc == nil {
		return nil, false
	}
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if err == redis.Nil {
		rc.miss()
		return nil, false
	}
	if err != nil {
		slog.Warn("response cache get error", "key", key, "error", err)
		rc.miss()
		return nil, false
	}
	slog.Debug("response cache hit", "key", key)
	if rc.observer != nil {
		rc.observer.CacheHit()
	}
	return val, true
}

func (rc *ResponseCache) miss() {
	if rc.observer != nil {
		rc.observer.CacheMiss()
	}
}

// Set stores body under key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if rc == nil {
		return
	}
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		slog.Warn("response cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single cached response.
func (rc *ResponseCache) Invalidate(ctx context.Context, key string) {
	if rc == nil {
		return
	}
	if err := rc.client.Del(ctx, responseKeyPrefix+key).Err(); err != nil {
		slog.Warn("response cache invalidate error", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached response by scanning for the prefix.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	if rc == nil {
		return
	}
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := rc.client.Scan(ctx, cursor, responseKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("response cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("response cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("response cache cleared", "deleted", deleted)
	}
}

// Key builds a cache key from a request path and its query parameters.
// Parameters are encoded in sorted order so equivalent URLs share a key.
func Key(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	return path + "?" + query.Encode()
}
