package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
)

// SetDietCommandHandler edits dietary notes. Ownership is verified inside the
// transaction: the item must belong to the order named by the command.
type SetDietCommandHandler struct {
	uowFactory CartUoWFactory
	clock      kernel.Clock
}

// NewSetDietCommandHandler creates a handler for dietary notes on cart items.
func NewSetDietCommandHandler(uowFactory CartUoWFactory, clock kernel.Clock) SetDietCommandHandler {
	return SetDietCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the note and refreshes the cart's last_modified.
// Fails with errs.ObjectNotFoundError when the order is missing or the item
// is not part of it, and with errs.InvalidTransitionError once the cart is placed.
func (h *SetDietCommandHandler) Handle(ctx context.Context, cmd SetDietCommand) error {
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
	item, err := itemRepo.Get(ctx, cmd.ItemID(), cart.ID())
	if err != nil {
		return err
	}

	item.SetDiet(cmd.Note())
	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	if err = cart.Touch(h.clock.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
