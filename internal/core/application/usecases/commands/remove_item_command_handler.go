package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/pkg/errs"
)

// RemoveItemCommandHandler removes items from carts.
type RemoveItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      kernel.Clock
}

// NewRemoveItemCommandHandler creates a handler that removes items from carts.
func NewRemoveItemCommandHandler(uowFactory CartUoWFactory, clock kernel.Clock) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle deletes the item from the cart and refreshes the cart's last_modified.
//
// Removing an item that does not exist at all is a no-op. An item that exists
// under a different order is reported as errs.ObjectNotFoundError, exactly as
// if it did not exist for this cart's owner.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	orderRepo := uow.OrderRepository()
	cart, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = cart.ValidateCartChange(); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	removed, err := itemRepo.Remove(ctx, cmd.ItemID(), cart.ID())
	if err != nil {
		return err
	}

	if !removed {
		exists, existsErr := itemRepo.Exists(ctx, cmd.ItemID())
		if existsErr != nil {
			return existsErr
		}
		if exists {
			return errs.NewObjectNotFoundError("item", cmd.ItemID())
		}
		return nil
	}

	if err = cart.Touch(h.clock.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
