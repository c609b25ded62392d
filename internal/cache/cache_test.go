package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPutThenGet(t *testing.T) {
	c := New[string, []string](10, time.Hour, true)

	c.Put("saka", []string{"433177"})
	got, ok := c.Get("saka")
	require.True(t, ok)
	require.Equal(t, []string{"433177"}, got)
}

func TestMiss(t *testing.T) {
	c := New[string, int](10, time.Hour, true)

	_, ok := c.Get("nope")
	require.False(t, ok)
}

func TestDisabledCacheNeverHits(t *testing.T) {
	c := New[string, int](10, time.Hour, false)

	c.Put("a", 1)
	_, ok := c.Get("a")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestTTLExpiry(t *testing.T) {
	c := New[string, int](10, time.Minute, true)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Put("a", 1)
	_, ok := c.Get("a")
	require.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("a")
	require.False(t, ok, "entry should expire after TTL regardless of access")
}

func TestLRUEviction(t *testing.T) {
	c := New[string, int](3, time.Hour, true)

	c.Put("a", 1)
	c.Put("b", 2)
	c.Put("c", 3)

	// touch "a" so "b" becomes the oldest
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("d", 4)
	require.Equal(t, 3, c.Len())

	_, ok = c.Get("b")
	require.False(t, ok, "least recently used entry should be evicted")
	for _, key := range []string{"a", "c", "d"} {
		_, ok := c.Get(key)
		require.True(t, ok, "key %q should survive eviction", key)
	}
}

func TestPutRefreshesExistingKey(t *testing.T) {
	c := New[string, int](2, time.Hour, true)

	c.Put("a", 1)
	c.Put("a", 2)
	require.Equal(t, 1, c.Len())

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestCompositeKeys(t *testing.T) {
	type key struct {
		ID     string
		Season string
	}
	c := New[key, string](10, time.Hour, true)

	c.Put(key{"433177", "2024"}, "stats-2024")
	c.Put(key{"433177", ""}, "stats-all-time")

	got, ok := c.Get(key{"433177", "2024"})
	require.True(t, ok)
	require.Equal(t, "stats-2024", got)

	got, ok = c.Get(key{"433177", ""})
	require.True(t, ok)
	require.Equal(t, "stats-all-time", got)
}

func TestStats(t *testing.T) {
	c := New[string, int](10, time.Minute, true)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Put("fresh", 1)
	c.Put("stale", 2)
	current = current.Add(30 * time.Second)
	c.Put("fresher", 3)
	current = current.Add(45 * time.Second)

	stats := c.Stats()
	require.Equal(t, 3, stats["total_keys"])
	require.Equal(t, 1, stats["active_keys"])
	require.Equal(t, 2, stats["expired_keys"])
}
