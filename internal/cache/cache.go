package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Fetcher loads the value of a key from its source.
type Fetcher[T any] func(ctx context.Context, key string) (T, error)

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// Stat describes a cached entry.
type Stat struct {
	Key       string
	Age       time.Duration
	Remaining time.Duration
	Expired   bool
}

// Cache memoizes fetched values for a fixed TTL. Concurrent Get calls for a
// key share the same fetch. Failed fetches are never cached.
type Cache[T any] struct {
	logger  *slog.Logger
	ttl     time.Duration
	fetch   Fetcher[T]
	metrics *Metrics
	now     func() time.Time

	lock       sync.Mutex
	entries    map[string]entry[T]
	generation uint64
	group      singleflight.Group
}

func New[T any](logger *slog.Logger, ttl time.Duration, fetch Fetcher[T], metrics *Metrics) *Cache[T] {
	return &Cache[T]{
		logger:  logger,
		ttl:     ttl,
		fetch:   fetch,
		metrics: metrics,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value of the key, fetching it if absent or expired.
// The fetch is not bound to the caller context: a caller giving up only
// discards the result, the fetch still completes and populates the cache.
func (c *Cache[T]) Get(ctx context.Context, key string) (T, error) {
	var zero T
	c.lock.Lock()
	current, ok := c.entries[key]
	if ok {
		if c.now().Sub(current.fetchedAt) < c.ttl {
			c.lock.Unlock()
			c.logger.Debug(fmt.Sprintf("using cached records for %s", key))
			c.metrics.request(key, "hit")
			return current.value, nil
		}
		c.logger.Debug(fmt.Sprintf("cache expired for %s, reloading", key))
		delete(c.entries, key)
	}
	generation := c.generation
	c.lock.Unlock()

	// callers arriving after an invalidation join the fetch in flight, its
	// result is returned but not stored
	fetchCtx := context.WithoutCancel(ctx)
	resultChan := c.group.DoChan(key, func() (interface{}, error) {
		value, err := c.load(fetchCtx, key, generation)
		return value, err
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case result := <-resultChan:
		if result.Err != nil {
			c.metrics.request(key, "error")
			return zero, result.Err
		}
		if result.Shared {
			c.metrics.request(key, "shared")
		} else {
			c.metrics.request(key, "miss")
		}
		return result.Val.(T), nil
	}
}

func (c *Cache[T]) load(ctx context.Context, key string, generation uint64) (T, error) {
	start := c.now()
	value, err := c.fetch(ctx, key)
	c.metrics.fetchDuration.WithLabelValues(key).Observe(c.now().Sub(start).Seconds())
	if err != nil {
		c.logger.Error(fmt.Sprintf("fail to load %s: %s", key, err.Error()))
		return value, err
	}
	c.lock.Lock()
	defer c.lock.Unlock()
	// the cache was invalidated during the fetch
	if generation != c.generation {
		c.logger.Debug(fmt.Sprintf("discarding records loaded for %s before invalidation", key))
		return value, nil
	}
	c.entries[key] = entry[T]{
		value:     value,
		fetchedAt: start,
	}
	c.logger.Debug(fmt.Sprintf("loaded and cached %s", key))
	return value, nil
}

// Invalidate removes every entry. Fetches in flight are not stored.
func (c *Cache[T]) Invalidate() {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries = make(map[string]entry[T])
	c.generation++
	c.logger.Info("cache cleared")
}

func (c *Cache[T]) Stats() []Stat {
	c.lock.Lock()
	defer c.lock.Unlock()
	now := c.now()
	result := make([]Stat, 0, len(c.entries))
	for key, e := range c.entries {
		age := now.Sub(e.fetchedAt)
		remaining := max(c.ttl-age, 0)
		result = append(result, Stat{
			Key:       key,
			Age:       age,
			Remaining: remaining,
			Expired:   remaining == 0,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}
