// Package ports defines the contracts between the ordering core and the
// infrastructure that persists orders, items, products and session bindings.
package ports

import (
	"context"
	"time"

	"foodly/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and returns its freshly assigned id.
	Add(ctx context.Context, aggregate *order.Order) (int64, error)

	// Update persists the order's status, handler, placed date and last modified.
	// The write is conditional on the status the order was loaded with; if
	// another transaction changed the status in the meantime, Update fails with
	// errs.InvalidTransitionError. Missing orders fail with errs.ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and their products without locking
	// it. Callers that only change the status rely on Update's status guard.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get with the order row locked until the transaction ends.
	// Item mutations use it so they serialize against placement and reaping.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// Exists reports whether an order with id is present, in any status.
	Exists(ctx context.Context, id int64) (bool, error)

	// Remove deletes the order and all of its items. Removing an absent order is a no-op.
	Remove(ctx context.Context, id int64) error

	// RemoveStale deletes every Pending order last modified before cutoff,
	// items first, and returns how many orders were removed.
	RemoveStale(ctx context.Context, cutoff time.Time) (int64, error)
}
