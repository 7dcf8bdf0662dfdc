package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeKey(t *testing.T) {
	assert.Equal(t, "geocode:5:kyoto", geocodeKey("  Kyoto ", 5))
	assert.Equal(t, geocodeKey("Kyoto", 10), geocodeKey("KYOTO", 10))
	assert.NotEqual(t, geocodeKey("Kyoto", 10), geocodeKey("Kyoto", 5))
}

func TestGeocodeCacheRepository(t *testing.T) {
	rdb, teardown := setupRedisContainer(t)
	defer teardown()

	ctx := context.Background()
	repo := NewGeocodeCacheRepository(rdb, time.Minute)

	results := []models.GeocodeResult{
		{DisplayName: "Kyoto, Japan", Lat: 35.0116, Lng: 135.7681},
		{DisplayName: "Kyoto Prefecture, Japan", Lat: 35.25, Lng: 135.44},
	}

	t.Run("Miss", func(t *testing.T) {
		got, err := repo.Get(ctx, "nowhere", 10)
		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.Nil(t, got)
	})

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "Kyoto", 10, results))

		got, err := repo.Get(ctx, " kyoto", 10)
		require.NoError(t, err)
		assert.Equal(t, results, got)

		ttl, err := rdb.TTL(ctx, geocodeKey("Kyoto", 10)).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Minute)
	})

	t.Run("LimitIsPartOfKey", func(t *testing.T) {
		_, err := repo.Get(ctx, "Kyoto", 1)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("EmptyResultsCached", func(t *testing.T) {
		require.NoError(t, repo.Set(ctx, "zzzz", 10, []models.GeocodeResult{}))

		got, err := repo.Get(ctx, "zzzz", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("CorruptValue", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, geocodeKey("broken", 10), "not-json", time.Minute).Err())

		_, err := repo.Get(ctx, "broken", 10)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
	})
}
