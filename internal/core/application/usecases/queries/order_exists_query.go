package queries

import (
	"context"

	"gorm.io/gorm"
)

// OrderExistsQuery asks whether an order id refers to a stored order.
// Any id may be used, including zero and negative ones.
type OrderExistsQuery struct {
	orderID int64
}

func NewOrderExistsQuery(orderID int64) OrderExistsQuery {
	return OrderExistsQuery{orderID: orderID}
}

func (q OrderExistsQuery) OrderID() int64 {
	return q.orderID
}

// OrderExistsQueryHandler answers OrderExistsQuery.
type OrderExistsQueryHandler struct {
	db *gorm.DB
}

func NewOrderExistsQueryHandler(db *gorm.DB) OrderExistsQueryHandler {
	return OrderExistsQueryHandler{db: db}
}

// Handle reports whether the order exists. It is a guard predicate and never
// fails: invalid ids and store errors both yield false.
func (h OrderExistsQueryHandler) Handle(ctx context.Context, query OrderExistsQuery) bool {
	if query.OrderID() <= 0 {
		return false
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE order_id = ?`, query.OrderID()).
		Scan(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
