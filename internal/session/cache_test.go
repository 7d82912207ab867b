package session

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCacheAddExists(t *testing.T) {
	c := NewCache(8, 0, discardLogger())

	c.Add(Terminal("web-1", "app"))

	assert.True(t, c.Exists(Terminal("web-1", "app")))
	assert.False(t, c.Exists(Logs("web-1", "app")), "log identity is distinct")
	assert.Equal(t, 1, c.Len())
}

func TestCacheRemove(t *testing.T) {
	c := NewCache(8, 0, discardLogger())
	c.Add(Terminal("web-1", "app"))

	assert.True(t, c.Remove(Terminal("web-1", "app")))
	assert.False(t, c.Exists(Terminal("web-1", "app")))
	assert.False(t, c.Remove(Terminal("web-1", "app")))
}

func TestCacheEvictsOldestOverCapacity(t *testing.T) {
	c := NewCache(2, 0, discardLogger())
	c.Add(Terminal("a", "app"))
	c.Add(Terminal("b", "app"))
	c.Add(Terminal("c", "app"))

	assert.False(t, c.Exists(Terminal("a", "app")))
	assert.True(t, c.Exists(Terminal("b", "app")))
	assert.True(t, c.Exists(Terminal("c", "app")))
}

func TestCacheExpires(t *testing.T) {
	c := NewCache(8, 50*time.Millisecond, discardLogger())
	c.Add(Terminal("web-1", "app"))
	require.True(t, c.Exists(Terminal("web-1", "app")))

	time.Sleep(120 * time.Millisecond)

	assert.False(t, c.Exists(Terminal("web-1", "app")))
}

func TestCacheSatisfiesResolve(t *testing.T) {
	c := NewCache(8, 0, nil)
	c.Add(Terminal("web-1", "app"))

	assert.Equal(t, AffordanceSessionExists, Resolve(Logs("web-1", "app"), false, c))
	assert.Equal(t, AffordanceDefault, Resolve(Logs("web-1", "db"), false, c))
}
