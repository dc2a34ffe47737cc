package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/finsight/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Defaults for the recommendation cache
const (
	DefaultTTL             = 30 * time.Minute
	DefaultMaxSize         = 100
	defaultCleanupInterval = time.Minute
)

// entry is one cached recommendation
type entry struct {
	payload   advisor.RecommendationPayload
	createdAt time.Time
	expiresAt time.Time
}

func (e *entry) isExpired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// RecommendationCache memoizes generated recommendations against metric
// fingerprints. Entries expire after their TTL and the map is bounded:
// at capacity the entry with the oldest insertion time is evicted
// (FIFO by createdAt, not LRU - re-reading an entry does not protect it).
//
// A single lock guards all structural mutations. The generate call on a
// miss runs outside the lock, so two concurrent misses for the same key
// may both invoke their generators; the last write wins. Construct one
// instance per process and inject it, it is not a package global.
type RecommendationCache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	defaultTTL      time.Duration
	maxSize         int
	cleanupInterval time.Duration
	logger          *zap.Logger

	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

// Option is a functional option for configuring the cache
type Option func(*RecommendationCache)

// WithLogger sets the logger for the cache
func WithLogger(logger *zap.Logger) Option {
	return func(c *RecommendationCache) {
		c.logger = logger
	}
}

// WithCleanupInterval overrides the background sweep interval
func WithCleanupInterval(interval time.Duration) Option {
	return func(c *RecommendationCache) {
		if interval > 0 {
			c.cleanupInterval = interval
		}
	}
}

// NewRecommendationCache creates a bounded TTL cache. It rejects
// non-positive TTL or capacity at construction rather than at call time.
func NewRecommendationCache(defaultTTL time.Duration, maxSize int, opts ...Option) (*RecommendationCache, error) {
	if defaultTTL <= 0 {
		return nil, shared.NewDomainError("INVALID_CACHE_CONFIG", "Cache TTL must be positive")
	}
	if maxSize <= 0 {
		return nil, shared.NewDomainError("INVALID_CACHE_CONFIG", "Cache max size must be positive")
	}

	c := &RecommendationCache{
		entries:         make(map[string]*entry),
		defaultTTL:      defaultTTL,
		maxSize:         maxSize,
		logger:          zap.NewNop(),
		stopCh:          make(chan struct{}),
		cleanupInterval: defaultCleanupInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	go c.sweepLoop()

	return c, nil
}

// Get returns the cached payload for a key. An entry past its expiry is
// removed and reported as absent; this is the only read-path mutation.
func (c *RecommendationCache) Get(key string) (advisor.RecommendationPayload, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		atomic.AddInt64(&c.misses, 1)
		return advisor.RecommendationPayload{}, false
	}
	if e.isExpired(now) {
		delete(c.entries, key)
		atomic.AddInt64(&c.misses, 1)
		c.logger.Debug("Evicted expired recommendation", zap.String("key", key))
		return advisor.RecommendationPayload{}, false
	}

	atomic.AddInt64(&c.hits, 1)
	return e.payload, true
}

// Set stores a payload under a key. A non-positive ttl falls back to the
// default. At capacity the oldest entry by insertion time is evicted first.
func (c *RecommendationCache) Set(key string, payload advisor.RecommendationPayload, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxSize {
		c.evictOldestLocked()
	}

	c.entries[key] = &entry{
		payload:   payload,
		createdAt: now,
		expiresAt: now.Add(ttl),
	}
	c.logger.Debug("Cached recommendation",
		zap.String("key", key),
		zap.Duration("ttl", ttl))
}

// Delete removes a key unconditionally. Absent keys are not an error.
func (c *RecommendationCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear removes all entries
func (c *RecommendationCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
	c.logger.Debug("Cleared recommendation cache")
}

// InvalidateType removes every entry belonging to one recommendation type.
// Used when the underlying source data for that category changes.
func (c *RecommendationCache) InvalidateType(recType advisor.RecommendationType) int {
	prefix := advisor.TypePrefix(recType)

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.logger.Debug("Invalidated recommendation type",
			zap.String("type", recType.String()),
			zap.Int("removed", removed))
	}
	return removed
}

// GetOrGenerate returns the cached payload for the snapshot's fingerprint,
// or invokes generate and caches its result. The returned bool reports
// whether the payload came from the cache. A failed generation propagates
// to the caller and is never cached.
func (c *RecommendationCache) GetOrGenerate(
	ctx context.Context,
	recType advisor.RecommendationType,
	snapshot advisor.MetricsSnapshot,
	generate advisor.GenerateFunc,
	ttl time.Duration,
) (advisor.RecommendationPayload, bool, error) {
	key := advisor.Fingerprint(recType, snapshot)

	if payload, ok := c.Get(key); ok {
		c.logger.Debug("Recommendation cache hit", zap.String("key", key))
		return payload, true, nil
	}

	// Generate outside the lock. Concurrent misses for the same key may
	// each invoke their generator; the last Set wins.
	payload, err := generate(ctx)
	if err != nil {
		return advisor.RecommendationPayload{}, false, err
	}

	c.Set(key, payload, ttl)
	return payload, false, nil
}

// Stats scans the cache and classifies each entry as valid or expired
// without removing anything.
func (c *RecommendationCache) Stats() advisor.CacheStats {
	now := time.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := advisor.CacheStats{
		TotalEntries:      len(c.entries),
		MaxSize:           c.maxSize,
		DefaultTTLMinutes: c.defaultTTL.Minutes(),
		Hits:              atomic.LoadInt64(&c.hits),
		Misses:            atomic.LoadInt64(&c.misses),
	}
	for _, e := range c.entries {
		if e.isExpired(now) {
			stats.ExpiredEntries++
		} else {
			stats.ValidEntries++
		}
	}
	return stats
}

// Len returns the number of entries currently stored
func (c *RecommendationCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CleanExpired removes every entry whose expiry has passed and returns
// the number removed.
func (c *RecommendationCache) CleanExpired() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.entries {
		if e.isExpired(now) {
			delete(c.entries, key)
			removed++
		}
	}
	if removed > 0 {
		c.logger.Debug("Swept expired recommendations", zap.Int("removed", removed))
	}
	return removed
}

// Close stops the background sweep goroutine
func (c *RecommendationCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// evictOldestLocked removes the entry with the smallest createdAt.
// Caller must hold the write lock.
func (c *RecommendationCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time

	for key, e := range c.entries {
		if oldestKey == "" || e.createdAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = e.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
		c.logger.Debug("Evicted oldest recommendation", zap.String("key", oldestKey))
	}
}

// sweepLoop periodically reclaims expired entries until Close is called
func (c *RecommendationCache) sweepLoop() {
	ticker := time.NewTicker(c.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.CleanExpired()
		}
	}
}

// Ensure RecommendationCache implements the domain cache port
var _ advisor.RecommendationCache = (*RecommendationCache)(nil)
