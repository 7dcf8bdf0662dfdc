package models

// GeocodeResult is a single place match returned by the geocoder.
type GeocodeResult struct {
	DisplayName string  `json:"displayName"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}
