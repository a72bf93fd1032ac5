package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/errs"
	"foodly/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGetOrderDetailQueryIsNotConstructed = errors.New(
		"GetOrderDetailQuery must be created via NewGetOrderDetailQuery constructor",
	)
)

// GetOrderDetailQuery retrieves one order with its items.
//
// With requirePlaced set, a cart that has not been placed yet is reported as
// not found. Receipt views use this so a stale link never shows cart state.
type GetOrderDetailQuery struct {
	orderID       int64
	requirePlaced bool

	guard guard.ConstructorGuard
}

func NewGetOrderDetailQuery(orderID int64, requirePlaced bool) GetOrderDetailQuery {
	return GetOrderDetailQuery{
		orderID:       orderID,
		requirePlaced: requirePlaced,
		guard:         guard.NewConstructorGuard(),
	}
}

func (q GetOrderDetailQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailQueryIsNotConstructed)
}

func (q GetOrderDetailQuery) OrderID() int64 {
	return q.orderID
}

func (q GetOrderDetailQuery) RequirePlaced() bool {
	return q.requirePlaced
}

// OrderDetailResponse is an order with resolved items and its total.
type OrderDetailResponse struct {
	ID           int64
	Status       order.Status
	HandledBy    *string
	LastModified time.Time
	PlacedDate   *time.Time
	Items        []ItemResponse
	Total        decimal.Decimal
}

// GetOrderDetailQueryHandler answers GetOrderDetailQuery.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle returns the order, or errs.ObjectNotFoundError. An order without
// items is still returned, with an empty item list and a zero total.
func (h GetOrderDetailQueryHandler) Handle(ctx context.Context, query GetOrderDetailQuery) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
	}

	var (
		row struct {
			OrderID      int64
			Status       int
			HandledBy    *string
			LastModified time.Time
			PlacedDate   *time.Time
		}
		items []ItemResponse
	)

	// The order row and its items come from one snapshot so the total always
	// matches the status it is shown with.
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Raw(`
			SELECT
				order_id,
				status,
				handled_by,
				last_modified,
				placed_date
			FROM orders
			WHERE order_id = ?
		`, query.OrderID()).Scan(&row)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", query.OrderID())
		}

		if query.RequirePlaced() && !order.Status(row.Status).IsPlaced() {
			return errs.NewObjectNotFoundErrorWithCause(
				"order", query.OrderID(), errors.New("order has not been placed"),
			)
		}

		var err error
		items, err = scanItems(ctx, tx, `WHERE i.order_id = ?`, row.OrderID)
		return err
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return OrderDetailResponse{}, err
	}

	status := order.Status(row.Status)
	response := OrderDetailResponse{
		ID:           row.OrderID,
		Status:       status,
		HandledBy:    row.HandledBy,
		LastModified: row.LastModified.UTC(),
		Items:        items,
		Total:        SumItems(items),
	}
	if row.PlacedDate != nil {
		placed := row.PlacedDate.UTC()
		response.PlacedDate = &placed
	}

	return response, nil
}
