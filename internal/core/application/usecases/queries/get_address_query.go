package queries

import (
	"errors"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrGetAddressQueryIsNotConstructed = errors.New(
	"GetAddressQuery must be created via NewGetAddressQuery constructor",
)

// GetAddressQuery fetches one address by id on behalf of its owner.
type GetAddressQuery struct {
	userID    string
	addressID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAddressQuery(userID string, addressID kernel.UUID) (GetAddressQuery, error) {
	var err error
	if userID == "" {
		err = errs.NewValueIsRequiredError("user_id")
	}
	if idErr := addressID.Validate(); idErr != nil {
		err = errors.Join(err, idErr)
	}
	if err != nil {
		return GetAddressQuery{}, err
	}

	return GetAddressQuery{
		userID:    userID,
		addressID: addressID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetAddressQuery) Validate() error {
	return q.guard.Validate(ErrGetAddressQueryIsNotConstructed)
}

func (q GetAddressQuery) UserID() string         { return q.userID }
func (q GetAddressQuery) AddressID() kernel.UUID { return q.addressID }
