package diagram

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_GetPut(t *testing.T) {
	c := newLRUCache(4)

	_, ok := c.get("a")
	assert.False(t, ok)

	c.put("a", Visualization{ASCII: "A"})
	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, "A", got.ASCII)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", Visualization{ASCII: "A"})
	c.put("b", Visualization{ASCII: "B"})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", Visualization{ASCII: "C"})

	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.len())
}

func TestLRUCache_PutExistingUpdatesValue(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", Visualization{ASCII: "old"})
	c.put("a", Visualization{ASCII: "new"})

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, "new", got.ASCII)
	assert.Equal(t, 1, c.len())
}

func TestLRUCache_MinimumCapacity(t *testing.T) {
	c := newLRUCache(0)

	c.put("a", Visualization{ASCII: "A"})
	c.put("b", Visualization{ASCII: "B"})

	assert.Equal(t, 1, c.len())
	_, ok := c.get("b")
	assert.True(t, ok)
}

func TestLRUCache_ConcurrentAccess(t *testing.T) {
	c := newLRUCache(16)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d", (n+j)%32)
				c.put(key, Visualization{ASCII: key})
				c.get(key)
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.len(), 16)
}
