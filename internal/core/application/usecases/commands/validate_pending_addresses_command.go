package commands

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrValidatePendingAddressesCommandIsNotConstructed = errors.New(
	"ValidatePendingAddressesCommand must be created via NewValidatePendingAddressesCommand constructor",
)

const MaxValidationBatchSize = 500

// ValidatePendingAddressesCommand geocodes one batch of addresses that are not
// yet marked valid, starting after the given cursor.
type ValidatePendingAddressesCommand struct { //nolint:recvcheck //using for validation
	batchSize int
	after     *kernel.UUID

	guard guard.ConstructorGuard
}

func NewValidatePendingAddressesCommand(batchSize int, after *kernel.UUID) (ValidatePendingAddressesCommand, error) {
	if batchSize < 1 || batchSize > MaxValidationBatchSize {
		return ValidatePendingAddressesCommand{},
			errs.NewValueIsOutOfRangeError("batch_size", batchSize, 1, MaxValidationBatchSize)
	}
	if after != nil {
		if err := after.Validate(); err != nil {
			return ValidatePendingAddressesCommand{}, err
		}
	}

	return ValidatePendingAddressesCommand{
		batchSize: batchSize,
		after:     after,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ValidatePendingAddressesCommand) Validate() error {
	return c.guard.Validate(ErrValidatePendingAddressesCommandIsNotConstructed)
}

func (c ValidatePendingAddressesCommand) BatchSize() int      { return c.batchSize }
func (c ValidatePendingAddressesCommand) After() *kernel.UUID { return c.after }
