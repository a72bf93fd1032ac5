package ports

import (
	"context"

	"foodly/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for the catalog.
type ProductRepository interface {
	// List returns the catalog ordered by category descending, then product id.
	List(ctx context.Context) ([]*product.Product, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// Seed inserts the products whose name is not yet present and returns how
	// many were inserted. Existing names are left untouched.
	Seed(ctx context.Context, products []*product.Product) (int64, error)
}
