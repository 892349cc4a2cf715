package services

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL matches the refresh window of the dashboard.
const DefaultTTL = 60 * time.Second

type DatasetLoader interface {
	Load(ctx context.Context) LoadResult
}

// DatasetCache holds the last LoadResult together with the time it was
// produced. A cached entry is served while now - timestamp < ttl; after
// that the next caller refreshes it. Concurrent refreshes share one load.
type DatasetCache struct {
	loader DatasetLoader
	ttl    time.Duration
	now    func() time.Time
	group  singleflight.Group

	mu    sync.RWMutex
	value *LoadResult
	stamp time.Time
	epoch uint64
}

func NewDatasetCache(loader DatasetLoader, ttl time.Duration) *DatasetCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DatasetCache{loader: loader, ttl: ttl, now: time.Now}
}

// Get returns the cached result when it is still fresh, else reloads.
func (c *DatasetCache) Get(ctx context.Context) LoadResult {
	if res, ok := c.fresh(); ok {
		return res
	}

	v, _, _ := c.group.Do("dataset", func() (any, error) {
		if res, ok := c.fresh(); ok {
			return res, nil
		}

		c.mu.RLock()
		epoch := c.epoch
		c.mu.RUnlock()

		// Detached so one caller going away does not fail the others.
		res := c.loader.Load(context.WithoutCancel(ctx))

		c.mu.Lock()
		if c.epoch == epoch {
			c.value = &res
			c.stamp = c.now()
		}
		c.mu.Unlock()

		return res, nil
	})

	return v.(LoadResult)
}

// Invalidate drops the cached entry so the next Get fetches again.
func (c *DatasetCache) Invalidate() {
	c.mu.Lock()
	c.value = nil
	c.stamp = time.Time{}
	c.epoch++
	c.mu.Unlock()
}

// LoadedAt reports when the cached entry was produced.
func (c *DatasetCache) LoadedAt() (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value == nil {
		return time.Time{}, false
	}
	return c.stamp, true
}

func (c *DatasetCache) fresh() (LoadResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value == nil || c.now().Sub(c.stamp) >= c.ttl {
		return LoadResult{}, false
	}
	return *c.value, true
}
