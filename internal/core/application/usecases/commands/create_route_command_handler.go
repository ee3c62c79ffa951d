package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/route"
	"capsule/internal/core/domain/services"
	"capsule/internal/core/ports"
)

// CreateRouteResult carries the stored route id and the provider payload the stop
// order was taken from.
type CreateRouteResult struct {
	RouteID        kernel.UUID
	OptimizedRoute json.RawMessage
}

// CreateRouteCommandHandler asks the directions provider for the stop order,
// applies it and stores the route with its stops in one transaction. The
// provider call happens before the transaction is opened. Announcing the route
// is left to the unit of work, which does it once the commit succeeded.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	directions ports.DirectionsClient
	sequencer  services.StopSequencer
	logger     *slog.Logger
}

func NewCreateRouteCommandHandler(
	uowFactory RouteUoWFactory,
	directions ports.DirectionsClient,
	sequencer services.StopSequencer,
	logger *slog.Logger,
) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
		directions: directions,
		sequencer:  sequencer,
		logger:     logger.With("component", "create_route"),
	}
}

func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (CreateRouteResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateRouteResult{}, err
	}

	optimized, err := h.directions.Optimize(
		ctx, cmd.Origin().Coordinate(), cmd.StopCoordinates(), cmd.Destination().Coordinate(),
	)
	if err != nil {
		return CreateRouteResult{}, err
	}

	stops, err := h.sequencer.Sequence(cmd.Stops(), optimized.WaypointOrder)
	if err != nil {
		return CreateRouteResult{}, err
	}

	created, err := route.NewRoute(cmd.Name(), cmd.Origin(), cmd.Destination(), stops)
	if err != nil {
		return CreateRouteResult{}, err
	}

	if err = h.store(ctx, created); err != nil {
		return CreateRouteResult{}, err
	}

	h.logger.InfoContext(ctx, "route created",
		"route_id", created.ID().String(), "stops", len(stops))

	return CreateRouteResult{
		RouteID:        created.ID(),
		OptimizedRoute: optimized.Payload,
	}, nil
}

func (h *CreateRouteCommandHandler) store(ctx context.Context, created *route.Route) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RouteRepository().Add(ctx, created); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
