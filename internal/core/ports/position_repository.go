package ports

import (
	"context"

	"capsule/internal/core/domain/model/tracking"
)

// PositionRepository appends provider positions. Reads go through queries.
type PositionRepository interface {
	Add(ctx context.Context, position *tracking.Position) error
}
