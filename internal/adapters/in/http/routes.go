package http

import (
	"net/http"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/application/usecases/queries"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateRoute handles POST /api/routing/routes.
func (s *Server) CreateRoute(c echo.Context) error {
	var req servers.CreateRouteJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	stops := make([]commands.RoutePoint, len(req.Stops))
	for i, p := range req.Stops {
		stops[i] = toRoutePoint(p)
	}

	cmd, err := commands.NewCreateRouteCommand(req.Name, toRoutePointPtr(req.Origin), stops, toRoutePointPtr(req.Destination))
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.CreateRoute.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, servers.CreateRouteResponse{
		RouteId:        result.RouteID.Bytes(),
		OptimizedRoute: result.OptimizedRoute,
	})
}

// GetRoute handles GET /api/routing/routes/{id}.
func (s *Server) GetRoute(c echo.Context, id servers.ID) error {
	routeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return badRequest(c, "invalid route id")
	}

	query, err := queries.NewGetRouteQuery(routeID)
	if err != nil {
		return s.fail(c, err)
	}

	view, err := s.handlers.GetRoute.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	response := servers.Route{
		Id:          view.ID.Bytes(),
		Name:        view.Name,
		Origin:      servers.Point(view.Origin),
		Destination: servers.Point(view.Destination),
		Stops:       make([]servers.Stop, len(view.Stops)),
		CreatedAt:   view.CreatedAt,
	}
	for i, stop := range view.Stops {
		response.Stops[i] = servers.Stop{
			Address:      stop.Address,
			Latitude:     stop.Latitude,
			Longitude:    stop.Longitude,
			Sequence:     stop.Sequence,
			DeliveryTime: stop.DeliveryTime,
		}
	}

	return c.JSON(http.StatusOK, response)
}

func toRoutePoint(p servers.RoutePoint) commands.RoutePoint {
	return commands.RoutePoint{
		Address:      p.Address,
		Latitude:     p.Latitude,
		Longitude:    p.Longitude,
		DeliveryTime: p.DeliveryTime,
	}
}

func toRoutePointPtr(p *servers.RoutePoint) *commands.RoutePoint {
	if p == nil {
		return nil
	}
	point := toRoutePoint(*p)
	return &point
}
