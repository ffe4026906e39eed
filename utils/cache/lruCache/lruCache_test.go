package lruCache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLRUCacheRejectsInvalidSize(t *testing.T) {
	_, err := NewLRUCache[string, int](0)
	assert.Error(t, err)
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c, err := NewLRUCache[string, int](2)
	require.NoError(t, err)

	c.Add("a", 1)
	c.Add("b", 2)
	_, _ = c.Get("a")
	c.Add("c", 3)

	_, ok := c.Get("b")
	assert.False(t, ok)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 2, c.Len())

	c.Remove("a")
	assert.Equal(t, 1, c.Len())
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestGetOrLoadComputesOnce(t *testing.T) {
	c, err := NewLRUCache[string, int](8)
	require.NoError(t, err)

	var mu sync.Mutex
	calls := 0
	load := func() int {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return 42
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := c.GetOrLoad("k", load)
			assert.Equal(t, 42, v)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
	_, cached := c.GetOrLoad("k", load)
	assert.True(t, cached)
}
