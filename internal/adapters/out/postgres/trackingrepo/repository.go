package trackingrepo

import (
	"context"

	"capsule/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

// GormPositionRepository implements ports.PositionRepository using GORM.
type GormPositionRepository struct {
	db *gorm.DB
}

func NewGormPositionRepository(db *gorm.DB) *GormPositionRepository {
	return &GormPositionRepository{db: db}
}

func (r *GormPositionRepository) Add(ctx context.Context, position *tracking.Position) error {
	if err := position.Validate(); err != nil {
		return err
	}

	dto := fromDomain(position)
	return r.db.WithContext(ctx).Create(&dto).Error
}
