package cache

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)

	type presence map[string]bool
	s.Put("k1", presence{"culinary": true, "education": false})

	var got presence
	require.True(t, s.Get("k1", &got))
	assert.True(t, got["culinary"])
	assert.False(t, got["education"])
}

func TestStore_Miss(t *testing.T) {
	s, _ := openTestStore(t)

	var got map[string]bool
	assert.False(t, s.Get("nope", &got))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(path)
	require.NoError(t, err)
	s.Put("stay", []int{1, 2, 3})
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close() //nolint:errcheck

	var got []int
	require.True(t, s2.Get("stay", &got))
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestStore_PeriodicFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	s, err := Open(path)
	require.NoError(t, err)
	for i := 0; i < flushEvery; i++ {
		s.Put(fmt.Sprintf("k%d", i), i)
	}

	// The tenth Put flushed; a second handle sees the entries without any
	// Close on the first.
	s2, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, flushEvery, s2.Len())

	require.NoError(t, s2.Close())
	require.NoError(t, s.Close())
}

func TestStore_OverwriteKey(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	s.Put("k", "old")
	require.NoError(t, s.Flush(ctx))
	s.Put("k", "new")
	require.NoError(t, s.Flush(ctx))

	var got string
	require.True(t, s.Get("k", &got))
	assert.Equal(t, "new", got)
	assert.Equal(t, 1, s.Len())
}

func TestPresenceKey(t *testing.T) {
	assert.Equal(t, "-6.2,106.816666,100", PresenceKey(-6.2, 106.816666, 100))

	// Full precision: nearby points stay distinct.
	assert.NotEqual(t, PresenceKey(-6.2000001, 106.8, 100), PresenceKey(-6.2000002, 106.8, 100))
	assert.NotEqual(t, PresenceKey(-6.2, 106.8, 100), PresenceKey(-6.2, 106.8, 200))
}

func TestDetailKey(t *testing.T) {
	assert.Equal(t, "detail_-6.2,106.8,culinary,100", DetailKey(-6.2, 106.8, "culinary", 100))
	assert.NotEqual(t, DetailKey(-6.2, 106.8, "culinary", 100), DetailKey(-6.2, 106.8, "education", 100))
}
