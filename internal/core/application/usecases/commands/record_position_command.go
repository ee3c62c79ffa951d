package commands

import (
	"errors"
	"time"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/guard"
)

var ErrRecordPositionCommandIsNotConstructed = errors.New(
	"RecordPositionCommand must be created via NewRecordPositionCommand constructor",
)

// RecordPositionCommand stores one location fix reported by a provider.
type RecordPositionCommand struct { //nolint:recvcheck //using for validation
	providerID string
	coordinate kernel.Coordinate
	recordedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordPositionCommand accepts a nil recordedAt, which stamps the fix with
// the time it is stored.
func NewRecordPositionCommand(
	providerID string, latitude, longitude float64, recordedAt *time.Time,
) (RecordPositionCommand, error) {
	cmd := RecordPositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	coordinate, coordErr := kernel.NewCoordinate(latitude, longitude)
	if err := errors.Join(
		requireField("provider_id", providerID, &cmd.providerID),
		coordErr,
	); err != nil {
		return RecordPositionCommand{}, err
	}

	cmd.coordinate = coordinate
	if recordedAt != nil {
		cmd.recordedAt = *recordedAt
	}

	return cmd, nil
}

func (c RecordPositionCommand) Validate() error {
	return c.guard.Validate(ErrRecordPositionCommandIsNotConstructed)
}

func (c RecordPositionCommand) ProviderID() string            { return c.providerID }
func (c RecordPositionCommand) Coordinate() kernel.Coordinate { return c.coordinate }

// RecordedAt is zero when the provider did not send a timestamp.
func (c RecordPositionCommand) RecordedAt() time.Time { return c.recordedAt }
