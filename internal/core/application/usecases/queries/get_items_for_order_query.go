package queries

import (
	"context"
	"errors"

	"foodly/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetItemsForOrderQueryIsNotConstructed = errors.New(
		"GetItemsForOrderQuery must be created via NewGetItemsForOrderQuery constructor",
	)
)

// GetItemsForOrderQuery retrieves the contents of one order.
type GetItemsForOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetItemsForOrderQuery(orderID int64) GetItemsForOrderQuery {
	return GetItemsForOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetItemsForOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetItemsForOrderQueryIsNotConstructed)
}

func (q GetItemsForOrderQuery) OrderID() int64 {
	return q.orderID
}

// GetItemsForOrderQueryHandler lists the items of an order.
type GetItemsForOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetItemsForOrderQueryHandler(db *gorm.DB) GetItemsForOrderQueryHandler {
	return GetItemsForOrderQueryHandler{db: db}
}

// Handle returns the items in insertion order. An order without items, or one
// that does not exist, yields an empty slice.
func (h GetItemsForOrderQueryHandler) Handle(ctx context.Context, query GetItemsForOrderQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanItems(ctx, h.db, `WHERE i.order_id = ?`, query.OrderID())
}
