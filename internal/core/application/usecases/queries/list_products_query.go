package queries

import (
	"errors"

	"foodly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery retrieves the whole catalog.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a parameterless catalog query.
func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID       int64
	Name     string
	Cost     decimal.Decimal
	Category string
}
