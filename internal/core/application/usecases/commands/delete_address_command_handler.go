package commands

import (
	"context"
)

// DeleteAddressCommandHandler hard-deletes an owner's address.
type DeleteAddressCommandHandler struct {
	uowFactory AddressUoWFactory
}

func NewDeleteAddressCommandHandler(uowFactory AddressUoWFactory) DeleteAddressCommandHandler {
	return DeleteAddressCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteAddressCommandHandler) Handle(ctx context.Context, cmd DeleteAddressCommand) error {
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

	if err := uow.AddressRepository().Delete(ctx, cmd.UserID(), cmd.AddressID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
