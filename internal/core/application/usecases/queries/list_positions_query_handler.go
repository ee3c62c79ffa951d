package queries

import (
	"context"
	"time"

	"capsule/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PositionView is one stored fix.
type PositionView struct {
	ID         kernel.UUID
	ProviderID string
	Latitude   float64
	Longitude  float64
	RecordedAt time.Time
}

// ListPositionsQueryHandler reads a provider's fixes, newest first.
type ListPositionsQueryHandler struct {
	db *gorm.DB
}

func NewListPositionsQueryHandler(db *gorm.DB) ListPositionsQueryHandler {
	return ListPositionsQueryHandler{db: db}
}

func (h ListPositionsQueryHandler) Handle(ctx context.Context, query ListPositionsQuery) ([]PositionView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			provider_id,
			latitude,
			longitude,
			recorded_at
		FROM provider_positions
		WHERE provider_id = ?
		ORDER BY recorded_at DESC, id
		LIMIT ?
	`, query.ProviderID(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	positions := make([]PositionView, 0)
	for rows.Next() {
		var (
			id   uuid.UUID
			view PositionView
		)
		if err = rows.Scan(&id, &view.ProviderID, &view.Latitude, &view.Longitude, &view.RecordedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		view.RecordedAt = view.RecordedAt.UTC()
		positions = append(positions, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return positions, nil
}
