package commands

import (
	"context"
)

// SeedProductsCommandHandler provisions the catalog. Products whose name is
// already present are skipped, so seeding at every start-up is safe.
type SeedProductsCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewSeedProductsCommandHandler creates a handler that provisions the catalog.
func NewSeedProductsCommandHandler(uowFactory CatalogUoWFactory) SeedProductsCommandHandler {
	return SeedProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle inserts the missing products and returns how many were inserted.
func (h *SeedProductsCommandHandler) Handle(ctx context.Context, cmd SeedProductsCommand) (int64, error) {
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

	inserted, err := uow.ProductRepository().Seed(ctx, cmd.Products())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return inserted, nil
}
