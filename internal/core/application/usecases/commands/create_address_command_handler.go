package commands

import (
	"context"

	"capsule/internal/core/domain/model/kernel"
	"capsule/internal/core/domain/model/location"
)

// CreateAddressCommandHandler resolves the location hierarchy and stores the
// address in one transaction, returning the id of the stored address. When the
// owner already has the same address, that address's id is returned unchanged.
type CreateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewCreateAddressCommandHandler(uowFactory AddressUoWFactory) CreateAddressCommandHandler {
	return CreateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateAddressCommandHandler) Handle(ctx context.Context, cmd CreateAddressCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hierarchy, err := NewHierarchyResolver(uow.LocationRepository()).Resolve(ctx, cmd.Location())
	if err != nil {
		return kernel.UUID{}, err
	}

	address, err := location.NewAddress(
		cmd.UserID(), hierarchy.Place, hierarchy.AddressLine1, hierarchy.AddressLine2, cmd.PostalCode(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = address.SetCoordinate(cmd.Coordinate()); err != nil {
		return kernel.UUID{}, err
	}
	address.SetBilling(cmd.IsBilling())
	address.SetDefault(cmd.IsDefault())

	addressRepo := uow.AddressRepository()
	stored, err := addressRepo.GetOrCreate(ctx, address)
	if err != nil {
		return kernel.UUID{}, err
	}

	if stored.IsDefault() {
		if err = addressRepo.ClearDefault(ctx, stored.UserID(), stored.ID()); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return stored.ID(), nil
}
