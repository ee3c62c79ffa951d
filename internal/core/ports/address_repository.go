package ports

import (
	"context"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"
)

// AddressRepository persists user-owned addresses. Every read and delete is
// scoped to the owner: an id owned by someone else is reported exactly like a
// missing id.
type AddressRepository interface {
	// GetOrCreate stores the address unless the owner already has one with the same
	// (address_line_1, address_line_2, city, state, country, postal_code) tuple,
	// and returns the stored address.
	GetOrCreate(ctx context.Context, address *location.Address) (*location.Address, error)

	// Get returns the owner's address or errs.ObjectNotFoundError.
	Get(ctx context.Context, userID string, id kernel.UUID) (*location.Address, error)

	// Update saves an existing address. A collision with another address of the
	// same owner is reported as errs.ObjectAlreadyExistsError.
	Update(ctx context.Context, address *location.Address) error

	// Delete removes the owner's address or returns errs.ObjectNotFoundError.
	Delete(ctx context.Context, userID string, id kernel.UUID) error

	// ClearDefault unsets is_default on every address of the owner except keep.
	ClearDefault(ctx context.Context, userID string, keep kernel.UUID) error

	// GetPendingValidation returns up to limit addresses with is_valid = false
	// whose id sorts after the cursor, ordered by id. A nil cursor starts from the
	// beginning.
	GetPendingValidation(ctx context.Context, after *kernel.UUID, limit int) ([]PendingAddress, error)

	// MarkValidated sets is_valid, latitude and longitude of a pending address
	// and nothing else. It reports false without writing when the row was changed
	// after seenUpdatedAt, was already validated, or is gone.
	MarkValidated(ctx context.Context, id kernel.UUID, coordinate kernel.Coordinate, seenUpdatedAt time.Time) (bool, error)
}

// PendingAddress is an unvalidated address with the names needed to geocode it.
type PendingAddress struct {
	Address     *location.Address
	City        string
	State       string
	CountryCode string
}
