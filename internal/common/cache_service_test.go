package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheService_SetGetDelete(t *testing.T) {
	cs := NewCacheService(60, 600)

	_, found := cs.Get("missing")
	assert.False(t, found)

	cs.Set("k", []byte("v"), time.Minute)
	val, found := cs.Get("k")
	require.True(t, found)
	assert.Equal(t, []byte("v"), val)
	assert.Equal(t, 1, cs.ItemCount())

	cs.Delete("k")
	_, found = cs.Get("k")
	assert.False(t, found)
}

func TestCacheService_Expiry(t *testing.T) {
	cs := NewCacheService(60, 600)

	cs.Set("k", []byte("v"), time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	_, found := cs.Get("k")
	assert.False(t, found)
}

func TestCacheService_GetOrSet(t *testing.T) {
	cs := NewCacheService(60, 600)
	calls := 0
	loader := func() ([]byte, error) {
		calls++
		return []byte("loaded"), nil
	}

	for i := 0; i < 3; i++ {
		val, err := cs.GetOrSet("k", time.Minute, loader)
		require.NoError(t, err)
		assert.Equal(t, []byte("loaded"), val)
	}
	assert.Equal(t, 1, calls)

	_, err := cs.GetOrSet("other", time.Minute, func() ([]byte, error) {
		return nil, errors.New("boom")
	})
	assert.Error(t, err)
	_, found := cs.Get("other")
	assert.False(t, found)
}

func TestCacheService_Backend(t *testing.T) {
	cs := NewCacheService(60, 600)
	assert.Equal(t, "memory", cs.Backend())
	assert.NoError(t, cs.Ping())
	assert.NoError(t, cs.Close())
}
