package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct_FieldPaths(t *testing.T) {
	lat := 1.0
	err := validateStruct(CreateDestinationInput{
		Coordinates: &CoordinatesInput{Lat: &lat},
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []FieldError{
		{Field: "name", Message: "is required"},
		{Field: "coordinates.lng", Message: "is required"},
	}, ve.Fields)
	assert.Contains(t, ve.Error(), "coordinates.lng: is required")
}

func TestValidateStruct_Finite(t *testing.T) {
	nan, inf := math.NaN(), math.Inf(1)
	err := validateStruct(CreateDestinationInput{
		Name:        "Nowhere",
		Coordinates: &CoordinatesInput{Lat: &nan, Lng: &inf},
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []FieldError{
		{Field: "coordinates.lat", Message: "must be a finite number"},
		{Field: "coordinates.lng", Message: "must be a finite number"},
	}, ve.Fields)
}

func TestValidateStruct_Register(t *testing.T) {
	err := validateStruct(RegisterInput{
		FirstName: "Ada",
		Email:     "not-an-email",
		Password:  "12345",
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.ElementsMatch(t, []FieldError{
		{Field: "lastName", Message: "is required"},
		{Field: "email", Message: "invalid email address"},
		{Field: "password", Message: "must be at least 6 characters"},
	}, ve.Fields)
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, validateStruct(LoginInput{Email: "ada@example.com", Password: "123456"}))
}
