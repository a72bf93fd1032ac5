package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/services"
)

// CreateOrderCommandHandler opens new carts. Every creation first reaps the
// carts that have been abandoned for longer than the staleness window, in the
// same transaction as the insert.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, policy)
//	orderID, err := handler.Handle(ctx, NewCreateOrderCommand())
//	if err != nil {
//	    return fmt.Errorf("cart creation failed: %w", err)
//	}
//	// orderID is bound to the client's session
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	policy     services.StalenessPolicy
}

// NewCreateOrderCommandHandler creates a handler for cart creation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	policy services.StalenessPolicy,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     policy,
	}
}

// Handle reaps stale carts and inserts a new Pending order, returning its id.
// Both steps commit or roll back together.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	cart, err := order.NewOrder(now)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err = orderRepo.RemoveStale(ctx, h.policy.Cutoff(now)); err != nil {
		return 0, err
	}

	orderID, err := orderRepo.Add(ctx, cart)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
