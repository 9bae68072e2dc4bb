package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	store.Set("greeting", "hello")
	store.Set("count", 42)

	var greeting string
	require.True(t, store.Get("greeting", &greeting))
	assert.Equal(t, "hello", greeting)

	var count int
	require.True(t, store.Get("count", &count))
	assert.Equal(t, 42, count)
}

func TestFileStoreSurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store := NewFileStore(path)
	store.Set("cart", []string{"a", "b"})

	reloaded := NewFileStore(path)
	var cart []string
	require.True(t, reloaded.Get("cart", &cart))
	assert.Equal(t, []string{"a", "b"}, cart)
}

func TestFileStoreMissingFileStartsEmpty(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "never-written.json"))

	var v string
	assert.False(t, store.Get("anything", &v))
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	var v string
	assert.False(t, store.Get("anything", &v))

	// The store must still be writable after a corrupt load.
	store.Set("key", "value")
	require.True(t, store.Get("key", &v))
	assert.Equal(t, "value", v)
}

func TestGetReportsFalseOnTypeMismatch(t *testing.T) {
	store := NewMemoryStore()
	store.Set("count", "not-a-number")

	var count int
	assert.False(t, store.Get("count", &count))
}

func TestGetOrFallsBack(t *testing.T) {
	store := NewMemoryStore()

	assert.Equal(t, "fallback", GetOr(store, "missing", "fallback"))

	store.Set("present", "stored")
	assert.Equal(t, "stored", GetOr(store, "present", "fallback"))
}

func TestRemoveAndClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store := NewFileStore(path)

	store.Set("a", 1)
	store.Set("b", 2)

	store.Remove("a")
	var v int
	assert.False(t, store.Get("a", &v))
	require.True(t, store.Get("b", &v))

	store.Clear()
	assert.False(t, store.Get("b", &v))

	// Removing an absent key is a no-op.
	store.Remove("never-there")
}
