package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/queuecommander/arena/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marker(id string, pos int) core.AttackMarker {
	return core.AttackMarker{ID: id, Kind: core.AttackMelee, Position: pos}
}

func TestMarkerCache_NewMarkerCache(t *testing.T) {
	cache := NewMarkerCache()

	require.NotNil(t, cache)
	assert.NotNil(t, cache.markers)
	assert.Equal(t, 0, cache.Len())
}

func TestMarkerCache_AddAndGet(t *testing.T) {
	cache := NewMarkerCache()

	cache.Add(marker("m1", 3))

	m, ok := cache.Get("m1")
	require.True(t, ok, "expected to find m1")
	assert.Equal(t, 3, m.Position)
}

func TestMarkerCache_Get_NotFound(t *testing.T) {
	cache := NewMarkerCache()

	_, ok := cache.Get("nonexistent")
	assert.False(t, ok, "expected not to find nonexistent marker")
}

func TestMarkerCache_Delete(t *testing.T) {
	cache := NewMarkerCache()

	cache.Add(marker("m1", 0))
	cache.Add(marker("m2", 1))

	assert.True(t, cache.Delete("m1"))

	_, ok := cache.Get("m1")
	assert.False(t, ok, "expected not to find m1 after delete")

	_, ok = cache.Get("m2")
	assert.True(t, ok, "expected m2 to still exist")
	assert.Equal(t, []core.AttackMarker{marker("m2", 1)}, cache.List())
}

func TestMarkerCache_Delete_NonExistent(t *testing.T) {
	cache := NewMarkerCache()

	assert.False(t, cache.Delete("nonexistent"))
}

func TestMarkerCache_ListKeepsInsertionOrder(t *testing.T) {
	cache := NewMarkerCache()

	cache.Add(marker("c", 0))
	cache.Add(marker("a", 1))
	cache.Add(marker("b", 2))
	cache.Add(marker("a", 9))

	ids := []string{}
	for _, m := range cache.List() {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	m, _ := cache.Get("a")
	assert.Equal(t, 9, m.Position, "re-adding replaces the marker")
}

func TestMarkerCache_Reset(t *testing.T) {
	cache := NewMarkerCache()

	cache.Add(marker("m1", 0))
	cache.Add(marker("m2", 1))

	cache.Reset()

	assert.Equal(t, 0, cache.Len())
	assert.Empty(t, cache.List())

	cache.Add(marker("m3", 0))
	_, ok := cache.Get("m3")
	assert.True(t, ok, "expected to find m3 after reset")
}

func TestMarkerCache_ConcurrentReadWrite(t *testing.T) {
	cache := NewMarkerCache()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(3)
		id := fmt.Sprintf("m%d", i%10)

		go func(pos int) {
			defer wg.Done()
			cache.Add(marker(id, pos))
		}(i)

		go func() {
			defer wg.Done()
			cache.List()
		}()

		go func() {
			defer wg.Done()
			cache.Delete(id)
		}()
	}

	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 10)
}
