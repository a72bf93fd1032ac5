package commands

import (
	"context"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/services"
)

// ReapStaleCartsCommandHandler removes Pending orders untouched for longer
// than the staleness window, together with their items.
type ReapStaleCartsCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
	policy     services.StalenessPolicy
}

// NewReapStaleCartsCommandHandler creates a handler that removes abandoned carts.
func NewReapStaleCartsCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	policy services.StalenessPolicy,
) ReapStaleCartsCommandHandler {
	return ReapStaleCartsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		policy:     policy,
	}
}

// Handle runs one sweep and returns how many carts were removed.
func (h *ReapStaleCartsCommandHandler) Handle(ctx context.Context, cmd ReapStaleCartsCommand) (int64, error) {
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

	removed, err := uow.OrderRepository().RemoveStale(ctx, h.policy.Cutoff(h.clock.Now()))
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
