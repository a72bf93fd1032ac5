package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/errs"
)

// AddItemCommandHandler adds items to carts.
//
// The cart row is locked before the insert, so adding an item serializes with
// placement and with the reaper: either the reaper removes the cart first and
// the add fails with NotFound, or the add refreshes last_modified first and
// the cart is no longer stale.
type AddItemCommandHandler struct {
	uowFactory CartUoWFactory
	clock      kernel.Clock
}

// NewAddItemCommandHandler creates a handler that adds items to carts.
func NewAddItemCommandHandler(uowFactory CartUoWFactory, clock kernel.Clock) AddItemCommandHandler {
	return AddItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle inserts the item, refreshes the cart's last_modified and returns the new item id.
//
// Returns:
//   - errs.ObjectNotFoundError if the order does not exist
//   - errs.ReferentialViolationError if the product does not exist
//   - errs.InvalidTransitionError if the order is no longer a cart
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	cart, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}
	if err = cart.ValidateCartChange(); err != nil {
		return 0, err
	}

	exists, err := uow.ProductRepository().Exists(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errs.NewReferentialViolationError("product", cmd.ProductID())
	}

	item, err := order.NewItem(cart.ID(), cmd.ProductID())
	if err != nil {
		return 0, err
	}
	itemID, err := uow.ItemRepository().Add(ctx, item)
	if err != nil {
		return 0, err
	}

	if err = cart.Touch(h.clock.Now()); err != nil {
		return 0, err
	}
	if err = orderRepo.Update(ctx, cart); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return itemID, nil
}
