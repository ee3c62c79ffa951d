package queries

import (
	"errors"
	"strings"

	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

var ErrListAddressesQueryIsNotConstructed = errors.New(
	"ListAddressesQuery must be created via NewListAddressesQuery constructor",
)

// ListAddressesQuery lists every address owned by one user.
type ListAddressesQuery struct {
	userID string

	guard guard.ConstructorGuard
}

func NewListAddressesQuery(userID string) (ListAddressesQuery, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ListAddressesQuery{}, errs.NewValueIsRequiredError("user_id")
	}

	return ListAddressesQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAddressesQuery) Validate() error {
	return q.guard.Validate(ErrListAddressesQueryIsNotConstructed)
}

func (q ListAddressesQuery) UserID() string {
	return q.userID
}
