// Package tracking holds the positions reported by delivery providers.
package tracking

import (
	"errors"
	"strings"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrPositionIsNotConstructed = errors.New("Position must be created via NewPosition or RestorePosition")

// Position is one location fix of a provider. Positions are append-only.
type Position struct {
	id         kernel.UUID
	providerID string
	coordinate kernel.Coordinate
	recordedAt time.Time
	guard      guard.ConstructorGuard
}

// NewPosition records a fix for providerID. A zero recordedAt means now.
func NewPosition(providerID string, coordinate kernel.Coordinate, recordedAt time.Time) (*Position, error) {
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	return RestorePosition(kernel.NewUUID(), providerID, coordinate, recordedAt)
}

func RestorePosition(
	id kernel.UUID, providerID string, coordinate kernel.Coordinate, recordedAt time.Time,
) (*Position, error) {
	providerID = strings.TrimSpace(providerID)

	var err error
	if idErr := id.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if providerID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("provider_id"))
	}
	if coordinate.Validate() != nil {
		err = errors.Join(err, errs.NewValueIsRequiredError("coordinate"))
	}
	if recordedAt.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("timestamp"))
	}
	if err != nil {
		return nil, err
	}

	return &Position{
		id:         id,
		providerID: providerID,
		coordinate: coordinate,
		recordedAt: recordedAt.UTC().Truncate(time.Microsecond),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (p *Position) Validate() error {
	if p == nil {
		return ErrPositionIsNotConstructed
	}
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p *Position) ID() kernel.UUID               { return p.id }
func (p *Position) ProviderID() string            { return p.providerID }
func (p *Position) Coordinate() kernel.Coordinate { return p.coordinate }
func (p *Position) RecordedAt() time.Time         { return p.recordedAt }
