package queries

import (
	"context"

	"capsule/internal/core/ports"
)

// ValidateAddressQueryHandler asks the geocoder whether an address exists. A
// result with Valid == false is a normal answer; only provider faults are errors.
type ValidateAddressQueryHandler struct {
	geocoder ports.Geocoder
}

func NewValidateAddressQueryHandler(geocoder ports.Geocoder) ValidateAddressQueryHandler {
	return ValidateAddressQueryHandler{geocoder: geocoder}
}

func (h ValidateAddressQueryHandler) Handle(ctx context.Context, query ValidateAddressQuery) (ports.GeocodeResult, error) {
	if err := query.Validate(); err != nil {
		return ports.GeocodeResult{}, err
	}

	return h.geocoder.Geocode(ctx, query.Address())
}
