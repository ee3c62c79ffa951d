package ports

import "context"

// GeocodeResult is the structured outcome of geocoding one free-text address.
// A provider that answers with a non-success status yields Valid == false and a
// human readable Error; that is an expected outcome, not a Go error.
type GeocodeResult struct {
	Valid  bool
	Status string
	Error  string

	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	CountryCode  string
	Latitude     float64
	Longitude    float64
}

// Geocoder turns free text into a GeocodeResult. Transport failures are returned
// as errs.ProviderUnavailableError and undecodable answers as
// errs.MalformedResponseError.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (GeocodeResult, error)
}
