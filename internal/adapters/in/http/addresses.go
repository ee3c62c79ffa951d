package http

import (
	"net/http"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func toAddress(v queries.AddressView) servers.Address {
	return servers.Address{
		Id:           v.ID.Bytes(),
		AddressLine1: v.AddressLine1,
		AddressLine2: v.AddressLine2,
		PostalCode:   v.PostalCode,
		City:         v.City,
		State:        v.State,
		Country:      v.Country,
		Latitude:     v.Latitude,
		Longitude:    v.Longitude,
		IsValid:      v.IsValid,
		IsBilling:    v.IsBilling,
		IsDefault:    v.IsDefault,
	}
}

// ListAddresses handles GET /api/locations/addresses.
func (s *Server) ListAddresses(c echo.Context) error {
	query, err := queries.NewListAddressesQuery(userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListAddresses.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Address, len(views))
	for i, v := range views {
		response[i] = toAddress(v)
	}

	return c.JSON(http.StatusOK, response)
}

// CreateAddress handles POST /api/locations/addresses. Posting an address the
// user already has returns the stored one.
func (s *Server) CreateAddress(c echo.Context) error {
	var req servers.CreateAddressJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewCreateAddressCommand(userID(c), commands.AddressFields{
		AddressLine1: deref(req.AddressLine1),
		AddressLine2: deref(req.AddressLine2),
		City:         deref(req.City),
		State:        deref(req.State),
		Country:      deref(req.Country),
		PostalCode:   deref(req.PostalCode),
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsBilling:    deref(req.IsBilling),
		IsDefault:    deref(req.IsDefault),
	})
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateAddress.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return s.respondAddress(c, http.StatusCreated, id)
}

// GetAddress handles GET /api/locations/addresses/{id}.
func (s *Server) GetAddress(c echo.Context, id servers.ID) error {
	addressID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(c, "invalid address id")
	}

	return s.respondAddress(c, http.StatusOK, addressID)
}

// UpdateAddress handles PUT /api/locations/addresses/{id}.
func (s *Server) UpdateAddress(c echo.Context, id servers.ID) error {
	addressID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(c, "invalid address id")
	}

	var req servers.UpdateAddressJSONRequestBody
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewUpdateAddressCommand(addressID, userID(c), commands.AddressPatch{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		PostalCode:   req.PostalCode,
		City:         req.City,
		State:        req.State,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsBilling:    req.IsBilling,
		IsDefault:    req.IsDefault,
	})
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.UpdateAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return s.respondAddress(c, http.StatusOK, addressID)
}

// DeleteAddress handles DELETE /api/locations/addresses/{id}.
func (s *Server) DeleteAddress(c echo.Context, id servers.ID) error {
	addressID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(c, "invalid address id")
	}

	cmd, err := commands.NewDeleteAddressCommand(addressID, userID(c))
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.handlers.DeleteAddress.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) respondAddress(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetAddressQuery(userID(c), id)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetAddress.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(status, toAddress(view))
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
