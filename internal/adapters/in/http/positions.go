package http

import (
	"net/http"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RecordPosition handles POST /api/locations/update. The caller is the
// provider whose position is stored.
func (s *Server) RecordPosition(c echo.Context) error {
	var req servers.RecordPositionJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	cmd, err := commands.NewRecordPositionCommand(userID(c), req.Latitude, req.Longitude, req.Timestamp)
	if err != nil {
		return s.fail(c, err)
	}

	position, err := s.handlers.RecordPosition.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.Position{
		Id:         position.ID().Bytes(),
		ProviderId: position.ProviderID(),
		Latitude:   position.Coordinate().Latitude(),
		Longitude:  position.Coordinate().Longitude(),
		Timestamp:  position.RecordedAt(),
	})
}

// ListPositions handles GET /api/locations/list.
func (s *Server) ListPositions(c echo.Context, params servers.ListPositionsParams) error {
	query, err := queries.NewListPositionsQuery(userID(c), deref(params.Limit))
	if err != nil {
		return s.fail(c, err)
	}

	views, err := s.handlers.ListPositions.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := make([]servers.Position, len(views))
	for i, v := range views {
		response[i] = servers.Position{
			Id:         v.ID.Bytes(),
			ProviderId: v.ProviderID,
			Latitude:   v.Latitude,
			Longitude:  v.Longitude,
			Timestamp:  v.RecordedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}
