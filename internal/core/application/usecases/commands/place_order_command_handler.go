package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
)

// PlaceOrderCommandHandler turns carts into kitchen tickets.
//
// Placement is single-use. Two concurrent placements of the same cart are
// serialized by the row lock, and the second one finds the order already
// Placed and fails with errs.InvalidTransitionError.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewPlaceOrderCommandHandler creates a handler that submits carts to the kitchen.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle places the order.
//
// Returns:
//   - errs.ObjectNotFoundError if the order does not exist
//   - ErrCartIsEmpty if the cart has no items; the order stays Pending
//   - errs.InvalidTransitionError if the order was already placed
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	if cart.IsCart() && len(cart.Items()) == 0 {
		return ErrCartIsEmpty
	}

	if err = cart.Place(cmd.HandledBy(), h.clock.Now()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
