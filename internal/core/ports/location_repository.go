// Package ports defines the contracts between the application core and its
// adapters: repositories, the unit of work, and the external providers.
package ports

import (
	"context"

	"capsule/internal/core/domain/model/location"
)

// LocationRepository resolves the append-only Country/State/City reference rows
// by natural key. Each GetOrCreate call is a single atomic get-or-create: the
// candidate is inserted unless a row with the same natural key exists, and the
// stored row is returned either way. Concurrent callers resolving the same key
// all receive the same row.
type LocationRepository interface {
	// GetOrCreateCountry resolves by code.
	GetOrCreateCountry(ctx context.Context, candidate *location.Country) (*location.Country, error)

	// GetOrCreateState resolves by (name, country).
	GetOrCreateState(ctx context.Context, candidate *location.State) (*location.State, error)

	// GetOrCreateCity resolves by (name, state, country).
	GetOrCreateCity(ctx context.Context, candidate *location.City) (*location.City, error)
}
