package queries

import (
	"context"
	"errors"

	"foodly/internal/pkg/errs"
	"foodly/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetItemQueryIsNotConstructed = errors.New(
		"GetItemQuery must be created via NewGetItemQuery constructor",
	)
)

// GetItemQuery retrieves one item of one order. Both ids must match.
type GetItemQuery struct {
	itemID  int64
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetItemQuery(itemID, orderID int64) GetItemQuery {
	return GetItemQuery{itemID: itemID, orderID: orderID, guard: guard.NewConstructorGuard()}
}

func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

func (q GetItemQuery) ItemID() int64 {
	return q.itemID
}

func (q GetItemQuery) OrderID() int64 {
	return q.orderID
}

// GetItemQueryHandler reads a single item.
type GetItemQueryHandler struct {
	db *gorm.DB
}

func NewGetItemQueryHandler(db *gorm.DB) GetItemQueryHandler {
	return GetItemQueryHandler{db: db}
}

// Handle returns the item, or errs.ObjectNotFoundError when it does not exist
// or belongs to another order.
func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return ItemResponse{}, err
	}

	items, err := scanItems(ctx, h.db, `WHERE i.item_id = ? AND i.order_id = ?`, query.ItemID(), query.OrderID())
	if err != nil {
		return ItemResponse{}, err
	}
	if len(items) == 0 {
		return ItemResponse{}, errs.NewObjectNotFoundError("item", query.ItemID())
	}

	return items[0], nil
}
