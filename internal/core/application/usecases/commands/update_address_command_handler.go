package commands

import (
	"context"
)

// UpdateAddressCommandHandler re-resolves the hierarchy for an owner's address and
// saves it. A foreign address id is reported as not found; a collision with
// another of the owner's addresses as errs.ObjectAlreadyExistsError.
type UpdateAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewUpdateAddressCommandHandler(uowFactory AddressUoWFactory) UpdateAddressCommandHandler {
	return UpdateAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateAddressCommandHandler) Handle(ctx context.Context, cmd UpdateAddressCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	addressRepo := uow.AddressRepository()
	address, err := addressRepo.Get(ctx, cmd.UserID(), cmd.AddressID())
	if err != nil {
		return err
	}

	hierarchy, err := NewHierarchyResolver(uow.LocationRepository()).
		Resolve(ctx, cmd.Location(address.AddressLine2()))
	if err != nil {
		return err
	}

	if err = address.Relocate(
		hierarchy.Place, hierarchy.AddressLine1, hierarchy.AddressLine2, cmd.PostalCode(),
	); err != nil {
		return err
	}
	if c := cmd.Coordinate(); c != nil {
		if err = address.SetCoordinate(c); err != nil {
			return err
		}
	}
	if b := cmd.IsBilling(); b != nil {
		address.SetBilling(*b)
	}
	if d := cmd.IsDefault(); d != nil {
		address.SetDefault(*d)
	}

	if err = addressRepo.Update(ctx, address); err != nil {
		return err
	}

	if address.IsDefault() {
		if err = addressRepo.ClearDefault(ctx, address.UserID(), address.ID()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
