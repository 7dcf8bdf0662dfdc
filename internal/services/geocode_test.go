package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/models"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/repositories"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_Search(t *testing.T) {
	results := []models.GeocodeResult{{DisplayName: "Kyoto, Japan", Lat: 35.0116, Lng: 135.7681}}

	tests := []struct {
		name    string
		setup   func(g *services.MockGeocoder, c *services.MockGeocodeCache)
		want    []models.GeocodeResult
		wantErr error
	}{
		{
			name: "cache hit",
			setup: func(g *services.MockGeocoder, c *services.MockGeocodeCache) {
				c.EXPECT().Get(gomock.Any(), "Kyoto", 5).Return(results, nil)
			},
			want: results,
		},
		{
			name: "cache miss",
			setup: func(g *services.MockGeocoder, c *services.MockGeocodeCache) {
				c.EXPECT().Get(gomock.Any(), "Kyoto", 5).Return(nil, repositories.ErrCacheMiss)
				g.EXPECT().Search(gomock.Any(), "Kyoto", 5).Return(results, nil)
				c.EXPECT().Set(gomock.Any(), "Kyoto", 5, results).Return(nil)
			},
			want: results,
		},
		{
			name: "cache down",
			setup: func(g *services.MockGeocoder, c *services.MockGeocodeCache) {
				c.EXPECT().Get(gomock.Any(), "Kyoto", 5).Return(nil, errors.New("connection refused"))
				g.EXPECT().Search(gomock.Any(), "Kyoto", 5).Return(results, nil)
				c.EXPECT().Set(gomock.Any(), "Kyoto", 5, results).Return(errors.New("connection refused"))
			},
			want: results,
		},
		{
			name: "upstream failure",
			setup: func(g *services.MockGeocoder, c *services.MockGeocodeCache) {
				c.EXPECT().Get(gomock.Any(), "Kyoto", 5).Return(nil, repositories.ErrCacheMiss)
				g.EXPECT().Search(gomock.Any(), "Kyoto", 5).Return(nil, errors.New("timeout"))
			},
			wantErr: services.ErrGeocoderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			geocoder := services.NewMockGeocoder(ctrl)
			cache := services.NewMockGeocodeCache(ctrl)
			tt.setup(geocoder, cache)

			svc := services.NewGeocodeService(geocoder, cache)
			got, err := svc.Search(context.Background(), services.GeocodeInput{Query: "  Kyoto ", Limit: 5})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGeocodeService_Search_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	geocoder := services.NewMockGeocoder(ctrl)

	geocoder.EXPECT().Search(gomock.Any(), "Oslo", 10).Return([]models.GeocodeResult{}, nil)

	svc := services.NewGeocodeService(geocoder, nil)
	got, err := svc.Search(context.Background(), services.GeocodeInput{Query: "Oslo", Limit: services.DefaultGeocodeLimit})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGeocodeService_Search_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     services.GeocodeInput
		wantField string
	}{
		{name: "blank query", input: services.GeocodeInput{Query: "   ", Limit: 10}, wantField: "q"},
		{name: "limit too small", input: services.GeocodeInput{Query: "Oslo", Limit: 0}, wantField: "limit"},
		{name: "limit too large", input: services.GeocodeInput{Query: "Oslo", Limit: 51}, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := services.NewGeocodeService(services.NewMockGeocoder(ctrl), services.NewMockGeocodeCache(ctrl))

			_, err := svc.Search(context.Background(), tt.input)

			var ve *services.ValidationError
			require.ErrorAs(t, err, &ve)
			require.Len(t, ve.Fields, 1)
			assert.Equal(t, tt.wantField, ve.Fields[0].Field)
		})
	}
}
