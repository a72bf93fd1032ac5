package commands

import (
	"context"
)

// AdvanceStatusCommandHandler applies kitchen status changes. Only a single
// forward step is accepted: Placed -> Cooking or Cooking -> Done.
//
// The order row is read without a lock. Items of a placed order never change,
// and the status-guarded Update rejects a concurrent advance.
type AdvanceStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceStatusCommandHandler creates a handler for kitchen status changes.
func NewAdvanceStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle moves the order to the requested status or fails with
// errs.InvalidTransitionError, leaving the order untouched.
func (h *AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Advance(cmd.Status()); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
