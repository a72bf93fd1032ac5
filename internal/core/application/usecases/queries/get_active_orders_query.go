package queries

import (
	"context"
	"errors"

	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery retrieves the restaurant's current load for the
// customer landing view.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// ActiveOrdersResponse partitions placed orders into finished and in-progress ones.
// Both slices are ordered by id.
type ActiveOrdersResponse struct {
	Done      []int64
	Preparing []int64
}

// GetActiveOrdersQueryHandler answers GetActiveOrdersQuery.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) (ActiveOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ActiveOrdersResponse{}, err
	}

	done, err := selectOrderIDs(ctx, h.db, order.Done)
	if err != nil {
		return ActiveOrdersResponse{}, err
	}

	preparing, err := selectOrderIDs(ctx, h.db, order.Placed, order.Cooking)
	if err != nil {
		return ActiveOrdersResponse{}, err
	}

	return ActiveOrdersResponse{Done: done, Preparing: preparing}, nil
}
