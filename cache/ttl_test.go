package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*TTL[[]string], *time.Time) {
	t.Helper()
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	c := NewTTL[[]string](10 * time.Minute).WithClock(func() time.Time { return now })
	return c, &now
}

func TestGetWithinTTL(t *testing.T) {
	c, now := newTestCache(t)
	c.Set("k", []string{"a"})

	*now = now.Add(9 * time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got)
}

func TestGetAfterTTLMisses(t *testing.T) {
	c, now := newTestCache(t)
	c.Set("k", []string{"a"})

	*now = now.Add(11 * time.Minute)
	_, ok := c.Get("k")
	assert.False(t, ok)
}

func TestGetStaleIgnoresAge(t *testing.T) {
	c, now := newTestCache(t)
	c.Set("k", []string{"a"})

	*now = now.Add(48 * time.Hour)
	got, ok := c.GetStale("k")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got)

	_, ok = c.GetStale("missing")
	assert.False(t, ok)
}

func TestSetResetsTTL(t *testing.T) {
	c, now := newTestCache(t)
	c.Set("k", []string{"a"})

	*now = now.Add(8 * time.Minute)
	c.Set("k", []string{"b"})

	*now = now.Add(8 * time.Minute)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, got)
}

func TestDeleteAndSize(t *testing.T) {
	c, _ := newTestCache(t)
	c.Set("a", nil)
	c.Set("b", nil)
	assert.Equal(t, 2, c.Size())

	c.Delete("a")
	assert.Equal(t, 1, c.Size())
	_, ok := c.GetStale("a")
	assert.False(t, ok)
}
