package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

//go:generate mockgen -source=geocode.go -destination=geocode_mock.go -package=services

// ErrGeocoderUnavailable is returned when the upstream place search fails.
var ErrGeocoderUnavailable = errors.New("geocoder unavailable")

// DefaultGeocodeLimit is used when a search does not ask for a result count.
const DefaultGeocodeLimit = 10

// Geocoder looks up places by free-text query.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]models.GeocodeResult, error)
}

// GeocodeCache stores search results keyed by query and limit.
type GeocodeCache interface {
	Get(ctx context.Context, query string, limit int) ([]models.GeocodeResult, error)
	Set(ctx context.Context, query string, limit int, results []models.GeocodeResult) error
}

// GeocodeInput is a place search request.
type GeocodeInput struct {
	Query string `json:"q" validate:"required"`
	Limit int    `json:"limit" validate:"gte=1,lte=50"`
}

// GeocodeService proxies place searches with an optional cache in front.
type GeocodeService struct {
	geocoder Geocoder
	cache    GeocodeCache
}

// NewGeocodeService creates a new GeocodeService. cache may be nil.
func NewGeocodeService(geocoder Geocoder, cache GeocodeCache) *GeocodeService {
	return &GeocodeService{
		geocoder: geocoder,
		cache:    cache,
	}
}

// Search returns places matching in.Query, serving from the cache when possible.
func (svc *GeocodeService) Search(ctx context.Context, in GeocodeInput) ([]models.GeocodeResult, error) {
	in.Query = strings.TrimSpace(in.Query)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	if svc.cache != nil {
		results, err := svc.cache.Get(ctx, in.Query, in.Limit)
		if err == nil {
			return results, nil
		}
		logger.Log.Debugw("geocode cache lookup failed", "query", in.Query, "err", err)
	}

	results, err := svc.geocoder.Search(ctx, in.Query, in.Limit)
	if err != nil {
		logger.Log.Errorw("geocoder search failed", "query", in.Query, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrGeocoderUnavailable, err)
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, in.Query, in.Limit, results); err != nil {
			logger.Log.Errorw("failed to cache geocode results", "err", err)
		}
	}

	return results, nil
}
