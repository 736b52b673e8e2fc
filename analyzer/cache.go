package analyzer

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// memoCache memoizes pipeline results per structural fingerprint. Distinct
// fingerprints compute in parallel; concurrent requests for one fingerprint
// collapse to a single computation through the flight group, and followers
// receive the completed bundle. Entries are never evicted; Reset exists for
// test isolation.
type memoCache struct {
	mu      sync.RWMutex
	entries map[uint64]*Result
	flight  singleflight.Group

	hits   atomic.Int64
	misses atomic.Int64
}

func newMemoCache() *memoCache {
	return &memoCache{entries: make(map[uint64]*Result)}
}

// do returns the cached result for key or computes and stores it exactly
// once.
func (c *memoCache) do(key uint64, compute func() (*Result, error)) (*Result, error) {
	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return cached, nil
	}
	c.misses.Add(1)

	v, err, _ := c.flight.Do(strconv.FormatUint(key, 16), func() (interface{}, error) {
		// a concurrent leader may have stored the entry before we joined
		c.mu.RLock()
		cached, ok := c.entries[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		res, err := compute()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = res
		c.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Result), nil
}

// Reset drops every entry and zeroes the counters.
func (c *memoCache) Reset() {
	c.mu.Lock()
	c.entries = make(map[uint64]*Result)
	c.mu.Unlock()
	c.hits.Store(0)
	c.misses.Store(0)
}

// Len returns the number of stored bundles.
func (c *memoCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CacheStats reports cache effectiveness counters.
type CacheStats struct {
	Hits    int64 `json:"hits" yaml:"hits"`
	Misses  int64 `json:"misses" yaml:"misses"`
	Entries int   `json:"entries" yaml:"entries"`
}

func (c *memoCache) stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.Len(),
	}
}
