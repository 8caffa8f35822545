package jobs

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Aryaagasti/FinalYearMcaBackend/internal/shared/telemetry"
)

// cacheStore is the slice of Redis the cached searcher needs.
type cacheStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// redisStore adapts a Redis client to the cacheStore interface.
type redisStore struct {
	client *redis.Client
}

func (s redisStore) Get(ctx context.Context, key string) (string, error) {
	return s.client.Get(ctx, key).Result()
}

func (s redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return s.client.Set(ctx, key, value, ttl).Err()
}

// CachedSearcher wraps a Searcher with a best-effort cache: cache misses and
// cache errors both fall through to the upstream, and a failed write never
// fails the search.
type CachedSearcher struct {
	Upstream Searcher
	Store    cacheStore
	TTL      time.Duration
}

// NewCachedSearcher caches upstream search results in Redis for the given
// TTL. A nil client disables caching and returns the upstream unchanged.
func NewCachedSearcher(upstream Searcher, client *redis.Client, ttl time.Duration) Searcher {
	if client == nil {
		return upstream
	}
	return &CachedSearcher{Upstream: upstream, Store: redisStore{client: client}, TTL: ttl}
}

// Search returns cached listings when present, otherwise queries the
// upstream and caches the result.
func (s *CachedSearcher) Search(ctx context.Context, query, location string) ([]Listing, error) {
	key := cacheKey(query, location)

	if raw, err := s.Store.Get(ctx, key); err == nil {
		var listings []Listing
		if err := json.Unmarshal([]byte(raw), &listings); err == nil {
			return listings, nil
		}
	} else if err != redis.Nil {
		telemetry.Warn("jobs.cache.read_failed", map[string]any{"cause": err.Error()})
	}

	listings, err := s.Upstream.Search(ctx, query, location)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(listings); err == nil {
		if err := s.Store.Set(ctx, key, string(raw), s.TTL); err != nil {
			telemetry.Warn("jobs.cache.write_failed", map[string]any{"cause": err.Error()})
		}
	}
	return listings, nil
}

func cacheKey(query, location string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(query) + "\x00" + strings.ToLower(location)))
	return "jobs:search:" + hex.EncodeToString(sum[:16])
}
