package http

import (
	"net/http"

	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ValidateAddress handles POST /api/locations/validate. Nothing is stored.
// Valid is false with Error set when the provider could not match the address.
func (s *Server) ValidateAddress(c echo.Context) error {
	var req servers.ValidateAddressJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	query, err := queries.NewValidateAddressQuery(req.Address)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.ValidateAddress.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	if !result.Valid {
		return c.JSON(http.StatusOK, servers.ValidateAddressResponse{Valid: false, Error: &result.Error})
	}

	// coordinates are always sent for a match, including 0
	return c.JSON(http.StatusOK, servers.ValidateAddressResponse{
		Valid:        true,
		AddressLine1: nonEmpty(result.AddressLine1),
		AddressLine2: nonEmpty(result.AddressLine2),
		City:         nonEmpty(result.City),
		State:        nonEmpty(result.State),
		PostalCode:   nonEmpty(result.PostalCode),
		Country:      nonEmpty(result.Country),
		CountryCode:  nonEmpty(result.CountryCode),
		Latitude:     &result.Latitude,
		Longitude:    &result.Longitude,
	})
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
