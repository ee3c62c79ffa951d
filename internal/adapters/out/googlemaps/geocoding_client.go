package googlemaps

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"capsule/internal/core/ports"
	"capsule/internal/pkg/errs"
)

const geocodingProvider = "google geocoding"

// Geocoding API status values.
const (
	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusUnknownError   = "UNKNOWN_ERROR"
)

var statusMessages = map[string]string{
	StatusZeroResults:    "No results found",
	StatusRequestDenied:  "Request denied",
	StatusInvalidRequest: "Invalid request",
	StatusUnknownError:   "Unknown error",
}

// GeocodingClient implements ports.Geocoder.
type GeocodingClient struct {
	client
}

func NewGeocodingClient(cfg Config) *GeocodingClient {
	return NewGeocodingClientWithHTTP(cfg, nil)
}

// NewGeocodingClientWithHTTP uses httpc instead of a client built from cfg.Timeout.
func NewGeocodingClientWithHTTP(cfg Config, httpc *http.Client) *GeocodingClient {
	return &GeocodingClient{client: newClient(geocodingProvider, cfg, httpc)}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves free text. A non-OK provider status is reported through
// GeocodeResult.Valid and Error, not as a Go error.
func (c *GeocodingClient) Geocode(ctx context.Context, address string) (ports.GeocodeResult, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ports.GeocodeResult{}, errs.NewValueIsRequiredError("address")
	}

	body, err := c.get(ctx, "/maps/api/geocode/json", url.Values{"address": {address}})
	if err != nil {
		return ports.GeocodeResult{}, err
	}

	var resp geocodeResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return ports.GeocodeResult{}, errs.NewMalformedResponseErrorWithCause(c.provider, "undecodable body", err)
	}

	if resp.Status != StatusOK {
		msg, ok := statusMessages[resp.Status]
		if !ok {
			msg = "Invalid address"
		}
		return ports.GeocodeResult{Valid: false, Status: resp.Status, Error: msg}, nil
	}
	if len(resp.Results) == 0 {
		return ports.GeocodeResult{Valid: false, Status: resp.Status, Error: statusMessages[StatusZeroResults]}, nil
	}

	first := resp.Results[0]
	result := ports.GeocodeResult{
		Valid:     true,
		Status:    resp.Status,
		Latitude:  first.Geometry.Location.Lat,
		Longitude: first.Geometry.Location.Lng,
	}

	var streetNumber, routeName string
	for _, component := range first.AddressComponents {
		for _, t := range component.Types {
			switch t {
			case "street_number":
				streetNumber = component.LongName
			case "route":
				routeName = component.LongName
			case "subpremise":
				result.AddressLine2 = component.LongName
			case "locality":
				result.City = component.LongName
			case "administrative_area_level_1":
				result.State = component.ShortName
			case "postal_code":
				result.PostalCode = component.LongName
			case "country":
				result.Country = component.LongName
				result.CountryCode = component.ShortName
			}
		}
	}
	result.AddressLine1 = strings.TrimSpace(streetNumber + " " + routeName)

	return result, nil
}
