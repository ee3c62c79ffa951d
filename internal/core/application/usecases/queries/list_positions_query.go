package queries

import (
	"errors"
	"strings"

	"capsule/internal/pkg/errs"
	"capsule/internal/pkg/guard"
)

const (
	DefaultPositionsLimit = 100
	MaxPositionsLimit     = 1000
)

var ErrListPositionsQueryIsNotConstructed = errors.New(
	"ListPositionsQuery must be created via NewListPositionsQuery constructor",
)

// ListPositionsQuery returns the latest fixes of one provider.
type ListPositionsQuery struct {
	providerID string
	limit      int

	guard guard.ConstructorGuard
}

// NewListPositionsQuery treats a zero limit as DefaultPositionsLimit.
func NewListPositionsQuery(providerID string, limit int) (ListPositionsQuery, error) {
	providerID = strings.TrimSpace(providerID)

	var err error
	if providerID == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("provider_id"))
	}
	if limit == 0 {
		limit = DefaultPositionsLimit
	}
	if limit < 1 || limit > MaxPositionsLimit {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPositionsLimit))
	}
	if err != nil {
		return ListPositionsQuery{}, err
	}

	return ListPositionsQuery{providerID: providerID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPositionsQuery) Validate() error {
	return q.guard.Validate(ErrListPositionsQueryIsNotConstructed)
}

func (q ListPositionsQuery) ProviderID() string { return q.providerID }
func (q ListPositionsQuery) Limit() int         { return q.limit }
