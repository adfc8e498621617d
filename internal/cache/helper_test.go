package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { SetClient(nil) })
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, SetJSON(ctx, "k", payload{Name: "nba", Count: 3}, time.Minute))

	var got payload
	require.NoError(t, GetJSON(ctx, "k", &got))
	assert.Equal(t, "nba", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestGetJSONMiss(t *testing.T) {
	setupMiniredis(t)

	var dest string
	err := GetJSON(context.Background(), "missing", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestGetJSONNilClient(t *testing.T) {
	SetClient(nil)

	var dest string
	err := GetJSON(context.Background(), "anything", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	load := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := Aside(ctx, "answer", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	// Second call is served from the cache.
	got, err = Aside(ctx, "answer", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls)
}

func TestAsideLoadError(t *testing.T) {
	setupMiniredis(t)

	wantErr := errors.New("boom")
	_, err := Aside(context.Background(), "err", time.Minute, func() (int, error) {
		return 0, wantErr
	})
	assert.ErrorIs(t, err, wantErr)
}

func TestInvalidateBlog(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, BlogKey(7), "post", time.Minute))
	require.NoError(t, SetJSON(ctx, PopularTagsKey, "tags", time.Minute))

	InvalidateBlog(ctx, 7)

	assert.False(t, mr.Exists(BlogKey(7)))
	assert.False(t, mr.Exists(PopularTagsKey))
}
