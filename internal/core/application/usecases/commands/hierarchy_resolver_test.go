package commands_test

import (
	"errors"
	"testing"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHierarchyResolver_Resolve_IsIdempotentAcrossCasing(t *testing.T) {
	ctx := t.Context()
	repo := newFakeLocationRepository()
	resolver := commands.NewHierarchyResolver(repo)

	first, err := resolver.Resolve(ctx, commands.RawLocation{
		AddressLine1: "123 main st",
		City:         "new york",
		State:        "ny",
		CountryCode:  "us",
	})
	require.NoError(t, err)

	second, err := resolver.Resolve(ctx, commands.RawLocation{
		AddressLine1: "  123   MAIN st ",
		City:         "  New   York ",
		State:        " NY",
		CountryCode:  "US ",
	})
	require.NoError(t, err)

	assert.True(t, first.Country.ID().IsEqual(second.Country.ID()))
	assert.True(t, first.State.ID().IsEqual(second.State.ID()))
	assert.True(t, first.City.ID().IsEqual(second.City.ID()))
	assert.True(t, first.Place.IsEqual(second.Place))
	assert.Equal(t, "123 Main St", second.AddressLine1)
	assert.Equal(t, "NEW YORK", second.City.Name())
	assert.Equal(t, "US", second.Country.Code())
	assert.Len(t, repo.countries, 1)
	assert.Len(t, repo.states, 1)
	assert.Len(t, repo.cities, 1)
}

func TestHierarchyResolver_Resolve_EmptyStateIsStoredAsIs(t *testing.T) {
	repo := newFakeLocationRepository()

	h, err := commands.NewHierarchyResolver(repo).Resolve(t.Context(), commands.RawLocation{
		AddressLine1: "1 Rue de Rivoli",
		City:         "Paris",
		CountryCode:  "fr",
	})

	require.NoError(t, err)
	assert.Empty(t, h.State.Name())
	assert.True(t, h.City.StateID().IsEqual(h.State.ID()))
}

func TestHierarchyResolver_Resolve_SameCityNameInDifferentStates(t *testing.T) {
	repo := newFakeLocationRepository()
	resolver := commands.NewHierarchyResolver(repo)

	portlandOR, err := resolver.Resolve(t.Context(), commands.RawLocation{City: "Portland", State: "OR", CountryCode: "US"})
	require.NoError(t, err)
	portlandME, err := resolver.Resolve(t.Context(), commands.RawLocation{City: "Portland", State: "ME", CountryCode: "US"})
	require.NoError(t, err)

	assert.False(t, portlandOR.City.ID().IsEqual(portlandME.City.ID()))
	assert.True(t, portlandOR.Country.ID().IsEqual(portlandME.Country.ID()))
}

func TestHierarchyResolver_Resolve_ValidatesBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		raw     commands.RawLocation
		want    error
		message string
	}{
		{
			name:    "country too long",
			raw:     commands.RawLocation{City: "Paris", CountryCode: "FRA"},
			want:    errs.ErrValueIsInvalid,
			message: "country",
		},
		{
			name:    "country missing",
			raw:     commands.RawLocation{City: "Paris"},
			want:    errs.ErrValueIsRequired,
			message: "country",
		},
		{
			name:    "city missing",
			raw:     commands.RawLocation{CountryCode: "FR", City: "   "},
			want:    errs.ErrValueIsRequired,
			message: "city",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockLocationRepository)

			_, err := commands.NewHierarchyResolver(repo).Resolve(t.Context(), tt.raw)

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.message)
			repo.AssertNotCalled(t, "GetOrCreateCountry", mock.Anything, mock.Anything)
		})
	}
}

func TestHierarchyResolver_Resolve_RepositoryError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockLocationRepository)
	dbErr := errors.New("connection reset")
	repo.On("GetOrCreateCountry", ctx, mock.AnythingOfType("*location.Country")).Return(nil, dbErr).Once()

	_, err := commands.NewHierarchyResolver(repo).Resolve(ctx, commands.RawLocation{City: "Paris", CountryCode: "FR"})

	require.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "GetOrCreateState", mock.Anything, mock.Anything)
}
