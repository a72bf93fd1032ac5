package queries_test

import (
	"context"
	"testing"

	"foodly/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	h := queries.NewListProductsQueryHandler(f.db)

	products, err := h.Handle(context.Background(), queries.NewListProductsQuery())
	require.NoError(t, err)
	require.Len(t, products, 4)

	// Pubmeny sorts before "23 meny" when ordering by category descending.
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Kebabtallrik", "Pommestallrik", "Schnitzel", "Glass"}, names)

	assert.Equal(t, "Pubmeny", products[0].Category)
	assert.True(t, decimal.NewFromInt(65).Equal(products[0].Cost))
	assert.Equal(t, f.menu["Kebabtallrik"], products[0].ID)
}

func TestListProductsQueryHandler_NotConstructed(t *testing.T) {
	f := newFixture(t)
	h := queries.NewListProductsQueryHandler(f.db)

	_, err := h.Handle(context.Background(), queries.ListProductsQuery{})
	require.ErrorIs(t, err, queries.ErrListProductsQueryIsNotConstructed)
}
