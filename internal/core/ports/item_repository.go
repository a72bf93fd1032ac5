package ports

import (
	"context"

	"foodly/internal/core/domain/model/order"
)

// ItemRepository defines the persistence contract for order items.
// Every lookup that takes an order id is scoped to that order: an item that
// exists under another order is reported as not found.
type ItemRepository interface {
	// Add persists a new item and returns its id. A product that does not exist
	// fails with errs.ReferentialViolationError.
	Add(ctx context.Context, item *order.Item) (int64, error)

	// Get retrieves itemID with its product, provided it belongs to orderID.
	Get(ctx context.Context, itemID, orderID int64) (*order.Item, error)

	// Exists reports whether itemID exists under any order.
	Exists(ctx context.Context, itemID int64) (bool, error)

	// Update persists the item's diet.
	Update(ctx context.Context, item *order.Item) error

	// Remove deletes itemID from orderID and reports whether a row was removed.
	Remove(ctx context.Context, itemID, orderID int64) (bool, error)
}
