package commands_test

import (
	"errors"
	"testing"

	"capsule/internal/core/application/usecases/commands"
	"capsule/internal/core/domain/model/location"
	"capsule/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateAddressCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAddressCommand("user-1", validAddressFields())

	locations := newFakeLocationRepository()
	addresses := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locations).Once(),
		uow.On("AddressRepository").Return(addresses).Once(),
		addresses.On("GetOrCreate", ctx, mock.MatchedBy(func(a *location.Address) bool {
			return a.UserID() == "user-1" &&
				a.AddressLine1() == "350 5th Ave" &&
				a.PostalCode() == "10118"
		})).Return(returnSame, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NoError(t, id.Validate())
	assert.Len(t, locations.cities, 1)
	addresses.AssertExpectations(t)
	addresses.AssertNotCalled(t, "ClearDefault", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateAddressCommandHandler_Handle_ReturnsExistingAddress(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAddressCommand("user-1", validAddressFields())

	locations := newFakeLocationRepository()
	hierarchy, err := commands.NewHierarchyResolver(locations).Resolve(ctx, cmd.Location())
	require.NoError(t, err)
	existing, err := location.NewAddress("user-1", hierarchy.Place, "350 5th Ave", "", "10118")
	require.NoError(t, err)

	addresses := new(MockAddressRepository)
	addresses.On("GetOrCreate", ctx, mock.AnythingOfType("*location.Address")).Return(existing, nil).Once()

	uow := new(MockAddressUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LocationRepository").Return(locations).Once()
	uow.On("AddressRepository").Return(addresses).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, id.IsEqual(existing.ID()))
	assert.Len(t, locations.countries, 1)
}

func TestCreateAddressCommandHandler_Handle_DefaultClearsOthers(t *testing.T) {
	ctx := t.Context()
	fields := validAddressFields()
	fields.IsDefault = true
	cmd, _ := commands.NewCreateAddressCommand("user-1", fields)

	addresses := new(MockAddressRepository)
	uow := new(MockAddressUoW)
	var stored *location.Address
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(newFakeLocationRepository()).Once(),
		uow.On("AddressRepository").Return(addresses).Once(),
		addresses.On("GetOrCreate", ctx, mock.AnythingOfType("*location.Address")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*location.Address) }).
			Return(returnSame, nil).Once(),
		addresses.On("ClearDefault", ctx, "user-1", mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsDefault())
	addresses.AssertCalled(t, "ClearDefault", ctx, "user-1", id)
}

func TestCreateAddressCommandHandler_Handle_InvalidCountryCreatesNothing(t *testing.T) {
	ctx := t.Context()
	fields := validAddressFields()
	fields.Country = "usa"
	cmd, err := commands.NewCreateAddressCommand("user-1", fields)
	require.NoError(t, err)

	locations := newFakeLocationRepository()
	uow := new(MockAddressUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LocationRepository").Return(locations).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, 0, locations.calls)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateAddressCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockAddressUoWFactory)
	h := commands.NewCreateAddressCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateAddressCommand{})

	require.ErrorIs(t, err, commands.ErrCreateAddressCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateAddressCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAddressCommand("user-1", validAddressFields())

	uow := new(MockAddressUoW)
	factory := new(MockAddressUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateAddressCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}

func TestCreateAddressCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateAddressCommand("user-1", validAddressFields())

	addresses := new(MockAddressRepository)
	addresses.On("GetOrCreate", ctx, mock.AnythingOfType("*location.Address")).
		Return(returnSame, nil).Once()

	uow := new(MockAddressUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LocationRepository").Return(newFakeLocationRepository()).Once()
	uow.On("AddressRepository").Return(addresses).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockAddressUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAddressCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit error")
	uow.AssertExpectations(t)
}
