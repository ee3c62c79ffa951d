package queries

import (
	"errors"
	"strings"

	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrValidateAddressQueryIsNotConstructed = errors.New(
	"ValidateAddressQuery must be created via NewValidateAddressQuery constructor",
)

// ValidateAddressQuery geocodes free text without storing anything.
type ValidateAddressQuery struct {
	address string

	guard guard.ConstructorGuard
}

func NewValidateAddressQuery(address string) (ValidateAddressQuery, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return ValidateAddressQuery{}, errs.NewValueIsRequiredError("address")
	}

	return ValidateAddressQuery{address: address, guard: guard.NewConstructorGuard()}, nil
}

func (q ValidateAddressQuery) Validate() error {
	return q.guard.Validate(ErrValidateAddressQueryIsNotConstructed)
}

func (q ValidateAddressQuery) Address() string {
	return q.address
}
