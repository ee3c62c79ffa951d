package commands_test

import (
	"testing"
	"time"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(address string, lat, lng float64) *commands.RoutePoint {
	return &commands.RoutePoint{Address: address, Latitude: lat, Longitude: lng}
}

func TestNewCreateRouteCommand(t *testing.T) {
	origin := point("Warehouse", 40.71, -74.00)
	destination := point("Depot", 40.75, -73.98)

	t.Run("valid", func(t *testing.T) {
		dt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		stops := []commands.RoutePoint{*point("A", 40.72, -73.99), {Address: "B", Latitude: 1, Longitude: 2, DeliveryTime: &dt}}

		cmd, err := commands.NewCreateRouteCommand("Monday", origin, stops, destination)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Monday", cmd.Name())
		assert.Equal(t, "Warehouse", cmd.Origin().Address())
		require.Len(t, cmd.Stops(), 2)
		assert.Equal(t, "B", cmd.Stops()[1].Waypoint.Address())
		assert.Equal(t, dt, *cmd.Stops()[1].DeliveryTime)
		assert.Equal(t, "1,2", cmd.StopCoordinates()[1].String())
	})

	t.Run("missing parts are named", func(t *testing.T) {
		_, err := commands.NewCreateRouteCommand("x", nil, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "origin")
		assert.Contains(t, err.Error(), "destination")
		assert.Contains(t, err.Error(), "stops")
	})

	t.Run("only destination missing", func(t *testing.T) {
		_, err := commands.NewCreateRouteCommand("x", origin, []commands.RoutePoint{*point("A", 1, 1)}, nil)

		require.EqualError(t, err, "value is required: destination")
	})

	t.Run("stop out of range names its index", func(t *testing.T) {
		stops := []commands.RoutePoint{*point("A", 1, 1), *point("B", 95, 1)}

		_, err := commands.NewCreateRouteCommand("x", origin, stops, destination)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "stops[1]")
		assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	})

	t.Run("origin out of range", func(t *testing.T) {
		_, err := commands.NewCreateRouteCommand("x", point("O", 0, 181), []commands.RoutePoint{*point("A", 1, 1)}, destination)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "origin")
	})
}
