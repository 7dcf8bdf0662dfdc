package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

// ErrCacheMiss is returned when no cached entry exists for a query.
var ErrCacheMiss = errors.New("geocode results not found in cache")

// GeocodeCacheRepository caches geocoder results in Redis
type GeocodeCacheRepository struct {
	client redis.Cmdable
	exp    time.Duration
}

// NewGeocodeCacheRepository creates a repository whose entries expire after expiration.
func NewGeocodeCacheRepository(client redis.Cmdable, expiration time.Duration) *GeocodeCacheRepository {
	return &GeocodeCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func geocodeKey(query string, limit int) string {
	return fmt.Sprintf("geocode:%d:%s", limit, strings.ToLower(strings.TrimSpace(query)))
}

// Get returns cached results for query, or ErrCacheMiss.
func (r *GeocodeCacheRepository) Get(ctx context.Context, query string, limit int) ([]models.GeocodeResult, error) {
	key := geocodeKey(query, limit)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("key", key, "result", nil, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var results []models.GeocodeResult
	if err := json.Unmarshal(val, &results); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", len(results), "error", nil)

	return results, nil
}

// Set stores results for query with the repository expiration.
func (r *GeocodeCacheRepository) Set(ctx context.Context, query string, limit int, results []models.GeocodeResult) error {
	key := geocodeKey(query, limit)

	data, err := json.Marshal(results)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("key", key, "result", len(results), "error", err)

	return err
}
