package analyzer

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoCacheHitMiss(t *testing.T) {
	c := newMemoCache()
	computed := 0
	compute := func() (*Result, error) {
		computed++
		return &Result{Function: "f"}, nil
	}

	first, err := c.do(1, compute)
	require.NoError(t, err)
	second, err := c.do(1, compute)
	require.NoError(t, err)

	assert.Equal(t, 1, computed)
	assert.Same(t, first, second)

	stats := c.stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Entries)
}

func TestMemoCacheDistinctKeys(t *testing.T) {
	c := newMemoCache()
	computed := 0
	for key := uint64(0); key < 4; key++ {
		_, err := c.do(key, func() (*Result, error) {
			computed++
			return &Result{}, nil
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 4, computed)
	assert.Equal(t, 4, c.Len())
}

func TestMemoCacheErrorNotStored(t *testing.T) {
	c := newMemoCache()
	boom := errors.New("boom")
	_, err := c.do(7, func() (*Result, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	// a later compute for the same key runs and succeeds
	res, err := c.do(7, func() (*Result, error) { return &Result{Function: "ok"}, nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", res.Function)
}

func TestMemoCacheConcurrentSameKeyComputesOnce(t *testing.T) {
	c := newMemoCache()
	var computed atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := c.do(42, func() (*Result, error) {
				computed.Add(1)
				return &Result{Function: "shared"}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "shared", res.Function)
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), computed.Load())
	assert.Equal(t, 1, c.Len())
	stats := c.stats()
	assert.Equal(t, int64(32), stats.Hits+stats.Misses)
}

func TestMemoCacheReset(t *testing.T) {
	c := newMemoCache()
	_, err := c.do(1, func() (*Result, error) { return &Result{}, nil })
	require.NoError(t, err)
	_, err = c.do(1, func() (*Result, error) { return &Result{}, nil })
	require.NoError(t, err)

	c.Reset()
	stats := c.stats()
	assert.Equal(t, 0, stats.Entries)
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
}
