package route

import (
	"errors"
	"math"
	"time"

	"capsule/internal/pkg/errs"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop")

// Stop is a waypoint at a fixed position in its route.
type Stop struct {
	sequence     int
	waypoint     Waypoint
	deliveryTime *time.Time

	isConstructed bool
}

func NewStop(sequence int, waypoint Waypoint, deliveryTime *time.Time) (Stop, error) {
	if sequence < 0 {
		return Stop{}, errs.NewValueIsOutOfRangeError("sequence", sequence, 0, math.MaxInt32)
	}
	if err := waypoint.Validate(); err != nil {
		return Stop{}, err
	}

	var dt *time.Time
	if deliveryTime != nil {
		copied := deliveryTime.UTC()
		dt = &copied
	}

	return Stop{
		sequence:      sequence,
		waypoint:      waypoint,
		deliveryTime:  dt,
		isConstructed: true,
	}, nil
}

func (s Stop) Validate() error {
	if !s.isConstructed {
		return ErrStopIsNotConstructed
	}
	return nil
}

func (s Stop) Sequence() int            { return s.sequence }
func (s Stop) Waypoint() Waypoint       { return s.waypoint }
func (s Stop) DeliveryTime() *time.Time { return s.deliveryTime }
