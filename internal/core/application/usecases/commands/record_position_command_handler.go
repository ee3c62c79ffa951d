package commands

import (
	"context"

	"capsule/internal/core/domain/model/tracking"
)

// RecordPositionCommandHandler appends a provider position.
type RecordPositionCommandHandler struct {
	uowFactory TrackingUoWFactory
}

func NewRecordPositionCommandHandler(uowFactory TrackingUoWFactory) RecordPositionCommandHandler {
	return RecordPositionCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RecordPositionCommandHandler) Handle(
	ctx context.Context, cmd RecordPositionCommand,
) (*tracking.Position, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	position, err := tracking.NewPosition(cmd.ProviderID(), cmd.Coordinate(), cmd.RecordedAt())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.PositionRepository().Add(ctx, position); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return position, nil
}
