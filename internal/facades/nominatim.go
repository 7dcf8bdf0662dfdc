package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
)

// nominatimPlace is one entry of a Nominatim /search response.
// Coordinates arrive as decimal strings.
type nominatimPlace struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// NominatimFacade searches places through the Nominatim HTTP API.
type NominatimFacade struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// NewNominatimFacade creates a facade calling baseURL with the given client.
// Nominatim's usage policy requires an identifying User-Agent.
func NewNominatimFacade(client *http.Client, baseURL, userAgent string) *NominatimFacade {
	return &NominatimFacade{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
	}
}

// Search returns up to limit places matching query.
func (f *NominatimFacade) Search(ctx context.Context, query string, limit int) ([]models.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to call nominatim", "query", query, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("nominatim returned an error", "query", query, "status", resp.StatusCode)
		return nil, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		logger.Log.Errorw("failed to decode nominatim response", "query", query, "error", err)
		return nil, fmt.Errorf("nominatim: %w", err)
	}

	results := make([]models.GeocodeResult, 0, len(places))
	for _, p := range places {
		lat, err := strconv.ParseFloat(p.Lat, 64)
		if err != nil {
			continue
		}
		lng, err := strconv.ParseFloat(p.Lon, 64)
		if err != nil {
			continue
		}
		results = append(results, models.GeocodeResult{
			DisplayName: p.DisplayName,
			Lat:         lat,
			Lng:         lng,
		})
	}

	return results, nil
}
