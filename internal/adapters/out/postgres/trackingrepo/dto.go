// Package trackingrepo appends provider positions.
package trackingrepo

import (
	"time"

	"capsule/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// PositionDTO is a row of provider_positions. Rows are read newest first per
// provider, and looked up by area through the coordinate index.
type PositionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProviderID string    `gorm:"not null;index:idx_provider_positions_provider,priority:1"`
	Latitude   float64   `gorm:"not null;index:idx_provider_positions_coordinate,priority:1"`
	Longitude  float64   `gorm:"not null;index:idx_provider_positions_coordinate,priority:2"`
	RecordedAt time.Time `gorm:"not null;index:idx_provider_positions_provider,priority:2,sort:desc"`
}

func (PositionDTO) TableName() string {
	return "provider_positions"
}

func fromDomain(p *tracking.Position) PositionDTO {
	return PositionDTO{
		ID:         p.ID().Bytes(),
		ProviderID: p.ProviderID(),
		Latitude:   p.Coordinate().Latitude(),
		Longitude:  p.Coordinate().Longitude(),
		RecordedAt: p.RecordedAt(),
	}
}
