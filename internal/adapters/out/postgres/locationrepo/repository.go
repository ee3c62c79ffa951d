package locationrepo

import (
	"context"
	"errors"

	"capsule/internal/adapters/out/postgres/pgconstraint"
	"capsule/internal/core/domain/model/location"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements ports.LocationRepository with
// INSERT ... ON CONFLICT DO NOTHING followed by a natural-key SELECT.
type GormLocationRepository struct {
	db *gorm.DB
}

func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

func (r *GormLocationRepository) GetOrCreateCountry(
	ctx context.Context, candidate *location.Country,
) (*location.Country, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	dto := countryFromDomain(candidate)
	var stored CountryDTO
	err := r.getOrCreate(ctx, &dto, []clause.Column{{Name: "code"}}, func(db *gorm.DB) error {
		return db.Where("code = ?", dto.Code).Take(&stored).Error
	})
	if err != nil {
		return nil, err
	}

	return countryToDomain(stored)
}

func (r *GormLocationRepository) GetOrCreateState(
	ctx context.Context, candidate *location.State,
) (*location.State, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	dto := stateFromDomain(candidate)
	var stored StateDTO
	err := r.getOrCreate(ctx, &dto, []clause.Column{{Name: "country_id"}, {Name: "name"}}, func(db *gorm.DB) error {
		return db.Where("country_id = ? AND name = ?", dto.CountryID, dto.Name).Take(&stored).Error
	})
	if err != nil {
		return nil, err
	}

	return stateToDomain(stored)
}

func (r *GormLocationRepository) GetOrCreateCity(
	ctx context.Context, candidate *location.City,
) (*location.City, error) {
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	dto := cityFromDomain(candidate)
	var stored CityDTO
	conflict := []clause.Column{{Name: "country_id"}, {Name: "state_id"}, {Name: "name"}}
	err := r.getOrCreate(ctx, &dto, conflict, func(db *gorm.DB) error {
		return db.Where("country_id = ? AND state_id = ? AND name = ?", dto.CountryID, dto.StateID, dto.Name).
			Take(&stored).Error
	})
	if err != nil {
		return nil, err
	}

	return cityToDomain(stored)
}

// getOrCreate inserts value unless its natural key exists, then runs lookup.
// The insert runs in its own savepoint when r.db is a transaction, so a
// duplicate key raised by a concurrent writer does not abort the caller's
// transaction; the lookup is then retried once.
func (r *GormLocationRepository) getOrCreate(
	ctx context.Context, value any, conflict []clause.Column, lookup func(db *gorm.DB) error,
) error {
	db := r.db.WithContext(ctx)

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: conflict, DoNothing: true}).
			Create(value).Error
	})
	if err != nil && !pgconstraint.IsUniqueViolation(err) {
		return err
	}

	err = lookup(db)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = lookup(db)
	}

	return err
}
