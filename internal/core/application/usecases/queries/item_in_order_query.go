package queries

import (
	"context"

	"gorm.io/gorm"
)

// ItemInOrderQuery asks whether an item exists and belongs to an order.
type ItemInOrderQuery struct {
	orderID int64
	itemID  int64
}

func NewItemInOrderQuery(orderID, itemID int64) ItemInOrderQuery {
	return ItemInOrderQuery{orderID: orderID, itemID: itemID}
}

func (q ItemInOrderQuery) OrderID() int64 {
	return q.orderID
}

func (q ItemInOrderQuery) ItemID() int64 {
	return q.itemID
}

// ItemInOrderQueryHandler answers ItemInOrderQuery.
type ItemInOrderQueryHandler struct {
	db *gorm.DB
}

func NewItemInOrderQueryHandler(db *gorm.DB) ItemInOrderQueryHandler {
	return ItemInOrderQueryHandler{db: db}
}

// Handle is true only when the item exists under exactly that order.
// Like OrderExistsQueryHandler it never fails.
func (h ItemInOrderQueryHandler) Handle(ctx context.Context, query ItemInOrderQuery) bool {
	if query.OrderID() <= 0 || query.ItemID() <= 0 {
		return false
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM items WHERE item_id = ? AND order_id = ?`, query.ItemID(), query.OrderID()).
		Scan(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
