package queries

import (
	"context"

	"foodly/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// CartExistsQuery asks whether an order id refers to a stored order that is
// still Pending.
type CartExistsQuery struct {
	orderID int64
}

func NewCartExistsQuery(orderID int64) CartExistsQuery {
	return CartExistsQuery{orderID: orderID}
}

func (q CartExistsQuery) OrderID() int64 {
	return q.orderID
}

// CartExistsQueryHandler answers CartExistsQuery.
type CartExistsQueryHandler struct {
	db *gorm.DB
}

func NewCartExistsQueryHandler(db *gorm.DB) CartExistsQueryHandler {
	return CartExistsQueryHandler{db: db}
}

// Handle reports whether the order exists and can still be edited. Like the
// other predicates it yields false on invalid ids and store errors.
func (h CartExistsQueryHandler) Handle(ctx context.Context, query CartExistsQuery) bool {
	if query.OrderID() <= 0 {
		return false
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE order_id = ? AND status = ?`, query.OrderID(), int(order.Pending)).
		Scan(&count).Error
	if err != nil {
		return false
	}
	return count > 0
}
