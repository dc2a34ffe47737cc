package advisor

import (
	"context"
	"time"
)

// GenerateFunc produces a recommendation payload for a cache miss. It
// represents a slow external call and must run outside any cache lock.
type GenerateFunc func(ctx context.Context) (RecommendationPayload, error)

// CacheStats is a point-in-time audit of cache contents. Expired entries
// are counted, not removed.
type CacheStats struct {
	TotalEntries      int     `json:"total_entries"`
	ValidEntries      int     `json:"valid_entries"`
	ExpiredEntries    int     `json:"expired_entries"`
	MaxSize           int     `json:"max_size"`
	DefaultTTLMinutes float64 `json:"default_ttl_minutes"`
	Hits              int64   `json:"hits"`
	Misses            int64   `json:"misses"`
}

// RecommendationCache memoizes generated recommendations against metric
// fingerprints. Keys are produced by Fingerprint, so every key carries a
// "<type>_" prefix that InvalidateType matches against.
type RecommendationCache interface {
	// Get returns the payload for a key, lazily evicting it when expired.
	Get(key string) (RecommendationPayload, bool)

	// Set stores a payload. A non-positive ttl means the default TTL.
	Set(key string, payload RecommendationPayload, ttl time.Duration)

	// Delete removes a key unconditionally; absent keys are not an error.
	Delete(key string)

	// Clear removes all entries.
	Clear()

	// InvalidateType removes every entry of one recommendation type and
	// returns the number removed.
	InvalidateType(recType RecommendationType) int

	// GetOrGenerate returns the cached payload for the snapshot's
	// fingerprint or invokes generate and caches the result. The bool
	// reports whether the payload came from cache. Generation failures
	// propagate and are never cached.
	GetOrGenerate(ctx context.Context, recType RecommendationType, snapshot MetricsSnapshot, generate GenerateFunc, ttl time.Duration) (RecommendationPayload, bool, error)

	// Stats classifies entries as valid or expired without removing them.
	Stats() CacheStats

	// CleanExpired removes expired entries and returns the number removed.
	CleanExpired() int

	// Close releases any resources held by the cache.
	Close() error
}
