package queries

import (
	"context"
	"errors"

	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
		"GetOrdersByStatusQuery must be created via a NewGet...OrdersQuery constructor",
	)
)

// GetOrdersByStatusQuery retrieves the ids of all orders in one status.
type GetOrdersByStatusQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for an arbitrary valid status.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}
	return GetOrdersByStatusQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

// NewGetPlacedOrdersQuery lists orders waiting for the kitchen.
func NewGetPlacedOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{status: order.Placed, guard: guard.NewConstructorGuard()}
}

// NewGetCookingOrdersQuery lists orders being prepared.
func NewGetCookingOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{status: order.Cooking, guard: guard.NewConstructorGuard()}
}

// NewGetDoneOrdersQuery lists finished orders.
func NewGetDoneOrdersQuery() GetOrdersByStatusQuery {
	return GetOrdersByStatusQuery{status: order.Done, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// GetOrdersByStatusQueryHandler lists order ids by status.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle returns the matching order ids in ascending order.
func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return selectOrderIDs(ctx, h.db, query.Status())
}

func selectOrderIDs(ctx context.Context, db *gorm.DB, statuses ...order.Status) ([]int64, error) {
	codes := make([]int, 0, len(statuses))
	for _, status := range statuses {
		codes = append(codes, int(status))
	}

	ids := make([]int64, 0)
	err := db.WithContext(ctx).
		Raw(`SELECT order_id FROM orders WHERE status IN ? ORDER BY order_id`, codes).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
