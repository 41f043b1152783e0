package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nvasilev/storefront/pkg/logger"
)

// CacheConfig holds response cache configuration.
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns the default response cache configuration.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      5 * time.Minute,
		CacheableStatus: []int{200, 203, 300, 301, 404},
	}
}

// Cache implements GET response caching with Redis.
type Cache struct {
	client *redis.Client
	config CacheConfig
}

// NewCache creates cache middleware. A nil client disables caching.
func NewCache(client *redis.Client, config CacheConfig) *Cache {
	return &Cache{client: client, config: config}
}

// cacheRecorder buffers the response so it can be both sent and stored.
type cacheRecorder struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rec *cacheRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *cacheRecorder) Write(b []byte) (int, error) {
	rec.body.Write(b)
	return rec.ResponseWriter.Write(b)
}

// Wrap caches GET responses of the wrapped handler.
func (c *Cache) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c.client == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		cacheKey := generateCacheKey(r)

		cached, err := c.client.Get(r.Context(), cacheKey).Bytes()
		if err == nil && len(cached) > 0 {
			logger.Debug(r.Context()).
				Str("path", r.URL.Path).
				Str("cache_key", cacheKey).
				Msg("Cache hit")

			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.Write(cached)
			return
		}

		rec := &cacheRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		rec.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(rec, r)

		if !isStatusCacheable(rec.statusCode, c.config.CacheableStatus) {
			return
		}

		if err := c.client.Set(r.Context(), cacheKey, rec.body.Bytes(), c.config.DefaultTTL).Err(); err != nil {
			logger.Warn(r.Context()).
				Err(err).
				Str("cache_key", cacheKey).
				Msg("Failed to cache response")
			return
		}

		logger.Debug(r.Context()).
			Str("path", r.URL.Path).
			Str("cache_key", cacheKey).
			Dur("ttl", c.config.DefaultTTL).
			Int("size", rec.body.Len()).
			Msg("Response cached")
	}
}

// Invalidate drops every cached response. Called after catalog writes so
// stale listings never outlive a mutation by more than one round trip.
func (c *Cache) Invalidate(r *http.Request) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(r.Context(), 0, "cache:*", 0).Iterator()
	for iter.Next(r.Context()) {
		c.client.Del(r.Context(), iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn(r.Context()).Err(err).Msg("Failed to invalidate response cache")
	}
}

// generateCacheKey generates a unique cache key for the request.
func generateCacheKey(r *http.Request) string {
	keyComponents := fmt.Sprintf("%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
	)
	hash := sha256.Sum256([]byte(keyComponents))
	return fmt.Sprintf("cache:%s", hex.EncodeToString(hash[:]))
}

// isStatusCacheable checks if the HTTP status code is cacheable.
func isStatusCacheable(status int, cacheable []int) bool {
	for _, s := range cacheable {
		if s == status {
			return true
		}
	}
	return false
}
