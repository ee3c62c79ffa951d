package services

import (
	"fmt"

	"capsule/internal/core/domain/model/route"
	"capsule/internal/pkg/errs"
)

// StopSequencer turns submitted stops into route stops following the visiting order
// chosen by a directions provider. Given stops [A, B, C] and order [2, 0, 1] it
// returns [C, A, B] with sequences 0, 1, 2.
type StopSequencer struct {
	provider string
}

// NewStopSequencer creates a sequencer; provider names the source of the order in errors.
func NewStopSequencer(provider string) StopSequencer {
	return StopSequencer{provider: provider}
}

// Sequence returns stops[order[i]] at sequence i. An order that is not a
// permutation of [0, len(stops)) is reported as a malformed provider response.
func (s StopSequencer) Sequence(stops []route.PlannedStop, order []int) ([]route.Stop, error) {
	if len(stops) == 0 {
		return nil, errs.NewValueIsRequiredError("stops")
	}
	if err := s.checkPermutation(len(stops), order); err != nil {
		return nil, err
	}

	sequenced := make([]route.Stop, 0, len(stops))
	for i, idx := range order {
		planned := stops[idx]
		st, err := route.NewStop(i, planned.Waypoint, planned.DeliveryTime)
		if err != nil {
			return nil, err
		}
		sequenced = append(sequenced, st)
	}

	return sequenced, nil
}

func (s StopSequencer) checkPermutation(n int, order []int) error {
	if len(order) != n {
		return errs.NewMalformedResponseError(s.provider,
			fmt.Sprintf("waypoint order has %d entries for %d stops", len(order), n))
	}

	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return errs.NewMalformedResponseError(s.provider,
				fmt.Sprintf("waypoint index %d is out of range for %d stops", idx, n))
		}
		if seen[idx] {
			return errs.NewMalformedResponseError(s.provider,
				fmt.Sprintf("waypoint index %d appears twice", idx))
		}
		seen[idx] = true
	}

	return nil
}
