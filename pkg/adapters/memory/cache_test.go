package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/prism/pkg/adapters/memory"
	"github.com/aretw0/prism/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_Contract(t *testing.T) {
	cache := memory.NewCache()
	ports.RunRenderCacheContract(t, cache)
}

func TestMemoryCache_Contract_Bounded(t *testing.T) {
	cache := memory.NewCache(memory.WithLimit(16))
	ports.RunRenderCacheContract(t, cache)
}

func TestMemoryCache_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(memory.WithLimit(2))

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Set(ctx, "a", "1'"))
	require.NoError(t, cache.Set(ctx, "c", "3"))

	assert.Equal(t, 2, cache.Len())
	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ports.ErrCacheMiss)

	v, err := cache.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "3", v)
}

func TestMemoryCache_DeleteKeepsOrderConsistent(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(memory.WithLimit(2))

	require.NoError(t, cache.Set(ctx, "a", "1"))
	require.NoError(t, cache.Set(ctx, "b", "2"))
	require.NoError(t, cache.Delete(ctx, "a"))
	require.NoError(t, cache.Set(ctx, "c", "3"))

	_, err := cache.Get(ctx, "b")
	assert.NoError(t, err)
	assert.Equal(t, 2, cache.Len())
}

func TestMemoryCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	cache := memory.NewCache(memory.WithLimit(8))

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i%10)
			_ = cache.Set(ctx, key, "v")
			_, _ = cache.Get(ctx, key)
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, cache.Len(), 8)
}
