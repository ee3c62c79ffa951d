package addressrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"capsule/internal/adapters/out/postgres/pgconstraint"
	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"
	"capsule/internal/core/ports"
	"capsule/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAddressRepository implements ports.AddressRepository using GORM.
type GormAddressRepository struct {
	db *gorm.DB
}

func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// GetOrCreate inserts the address unless the owner already stores the same
// natural key and returns the stored row. An existing row is returned as is.
func (r *GormAddressRepository) GetOrCreate(
	ctx context.Context, aggregate *location.Address,
) (*location.Address, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	dto := fromDomain(aggregate)

	conflict := make([]clause.Column, 0, len(naturalKey))
	for _, name := range naturalKey {
		conflict = append(conflict, clause.Column{Name: name})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{Columns: conflict, DoNothing: true}).
			Create(&dto).Error
	})
	if err != nil && !pgconstraint.IsUniqueViolation(err) {
		if pgconstraint.IsForeignKeyViolation(err) {
			return nil, errs.NewValueIsInvalidErrorWithCause("city", err)
		}
		return nil, err
	}

	lookup := func() (AddressDTO, error) {
		var stored AddressDTO
		err := db.Where(
			"address_line_1 = ? AND address_line_2 = ? AND city_id = ? AND state_id = ? "+
				"AND country_id = ? AND postal_code = ? AND user_id = ?",
			dto.AddressLine1, dto.AddressLine2, dto.CityID, dto.StateID, dto.CountryID, dto.PostalCode, dto.UserID,
		).Take(&stored).Error
		return stored, err
	}

	stored, err := lookup()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		stored, err = lookup()
	}
	if err != nil {
		return nil, err
	}

	return toDomain(stored)
}

// Get retrieves the owner's address by id.
func (r *GormAddressRepository) Get(ctx context.Context, userID string, id kernel.UUID) (*location.Address, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AddressDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND user_id = ?", id.Bytes(), userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("address", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves every mutable column of an existing address.
func (r *GormAddressRepository) Update(ctx context.Context, aggregate *location.Address) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ? AND user_id = ?", dto.ID, dto.UserID).
		Updates(map[string]any{
			"address_line_1": dto.AddressLine1,
			"address_line_2": dto.AddressLine2,
			"postal_code":    dto.PostalCode,
			"city_id":        dto.CityID,
			"state_id":       dto.StateID,
			"country_id":     dto.CountryID,
			"latitude":       dto.Latitude,
			"longitude":      dto.Longitude,
			"is_valid":       dto.IsValid,
			"is_billing":     dto.IsBilling,
			"is_default":     dto.IsDefault,
			"updated_at":     dto.UpdatedAt,
		})
	if result.Error != nil {
		if pgconstraint.IsUniqueViolation(result.Error) {
			return errs.NewObjectAlreadyExistsErrorWithCause("address", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", aggregate.ID().String())
	}

	return nil
}

// Delete removes the owner's address. Reference rows are left untouched.
func (r *GormAddressRepository) Delete(ctx context.Context, userID string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id.Bytes(), userID).Delete(&AddressDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("address", id.String())
	}

	return nil
}

func (r *GormAddressRepository) ClearDefault(ctx context.Context, userID string, keep kernel.UUID) error {
	return r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("user_id = ? AND id <> ? AND is_default", userID, keep.Bytes()).
		Update("is_default", false).Error
}

// MarkValidated writes only the validation columns and leaves updated_at as
// is. The updated_at guard makes a concurrent edit win over the stale snapshot.
func (r *GormAddressRepository) MarkValidated(
	ctx context.Context, id kernel.UUID, coordinate kernel.Coordinate, seenUpdatedAt time.Time,
) (bool, error) {
	if err := errors.Join(id.Validate(), coordinate.Validate()); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&AddressDTO{}).
		Where("id = ? AND is_valid = false AND updated_at = ?", id.Bytes(), seenUpdatedAt).
		UpdateColumns(map[string]any{
			"is_valid":  true,
			"latitude":  coordinate.Latitude(),
			"longitude": coordinate.Longitude(),
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetPendingValidation pages through unvalidated addresses by id.
func (r *GormAddressRepository) GetPendingValidation(
	ctx context.Context, after *kernel.UUID, limit int,
) ([]ports.PendingAddress, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	query := `
		SELECT
			a.id, a.user_id, a.address_line_1, a.address_line_2, a.postal_code,
			a.city_id, a.state_id, a.country_id, a.latitude, a.longitude,
			a.is_valid, a.is_billing, a.is_default, a.created_at, a.updated_at,
			ci.name, st.name, co.code
		FROM addresses a
		JOIN cities ci ON ci.id = a.city_id
		JOIN states st ON st.id = a.state_id
		JOIN countries co ON co.id = a.country_id
		WHERE a.is_valid = false`
	args := make([]any, 0, 2)
	if after != nil {
		query += ` AND a.id > ?`
		args = append(args, after.Bytes())
	}
	query += ` ORDER BY a.id LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]ports.PendingAddress, 0, limit)
	for rows.Next() {
		var (
			dto       AddressDTO
			latitude  sql.NullFloat64
			longitude sql.NullFloat64
			item      ports.PendingAddress
		)
		if err = rows.Scan(
			&dto.ID, &dto.UserID, &dto.AddressLine1, &dto.AddressLine2, &dto.PostalCode,
			&dto.CityID, &dto.StateID, &dto.CountryID, &latitude, &longitude,
			&dto.IsValid, &dto.IsBilling, &dto.IsDefault, &dto.CreatedAt, &dto.UpdatedAt,
			&item.City, &item.State, &item.CountryCode,
		); err != nil {
			return nil, err
		}
		if latitude.Valid && longitude.Valid {
			dto.Latitude = &latitude.Float64
			dto.Longitude = &longitude.Float64
		}

		item.Address, err = toDomain(dto)
		if err != nil {
			return nil, err
		}
		pending = append(pending, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
