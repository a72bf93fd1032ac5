package queries_test

import (
	"context"
	"testing"

	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetItemsForOrderQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	orderID := f.cart(t, "Kebabtallrik", "Glass", "Kebabtallrik")
	other := f.cart(t, "Schnitzel")
	ids := f.itemIDs(t, orderID)
	f.setDiet(t, orderID, ids[1], "laktosfri")

	h := queries.NewGetItemsForOrderQueryHandler(f.db)
	items, err := h.Handle(context.Background(), queries.NewGetItemsForOrderQuery(orderID))
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, ids, []int64{items[0].ItemID, items[1].ItemID, items[2].ItemID})
	assert.Equal(t, "Kebabtallrik", items[0].ProductName)
	assert.Equal(t, "Glass", items[1].ProductName)
	assert.Equal(t, "23 meny", items[1].Category)
	require.NotNil(t, items[1].Diet)
	assert.Equal(t, "laktosfri", *items[1].Diet)
	assert.Nil(t, items[0].Diet)
	for _, item := range items {
		assert.Equal(t, orderID, item.OrderID)
	}
	assert.True(t, decimal.NewFromInt(160).Equal(queries.SumItems(items)))

	otherItems, err := h.Handle(context.Background(), queries.NewGetItemsForOrderQuery(other))
	require.NoError(t, err)
	require.Len(t, otherItems, 1)
	assert.Equal(t, "Schnitzel", otherItems[0].ProductName)
}

func TestGetItemsForOrderQueryHandler_EmptyAndMissing(t *testing.T) {
	f := newFixture(t)
	orderID := f.cart(t)
	h := queries.NewGetItemsForOrderQueryHandler(f.db)

	items, err := h.Handle(context.Background(), queries.NewGetItemsForOrderQuery(orderID))
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.True(t, queries.SumItems(items).IsZero())

	items, err = h.Handle(context.Background(), queries.NewGetItemsForOrderQuery(orderID+42))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItemQueryHandler_Handle(t *testing.T) {
	f := newFixture(t)
	orderID := f.cart(t, "Pommestallrik")
	other := f.cart(t)
	itemID := f.itemIDs(t, orderID)[0]
	h := queries.NewGetItemQueryHandler(f.db)

	item, err := h.Handle(context.Background(), queries.NewGetItemQuery(itemID, orderID))
	require.NoError(t, err)
	assert.Equal(t, itemID, item.ItemID)
	assert.Equal(t, "Pommestallrik", item.ProductName)
	assert.True(t, decimal.NewFromInt(50).Equal(item.Cost))

	_, err = h.Handle(context.Background(), queries.NewGetItemQuery(itemID, other))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = h.Handle(context.Background(), queries.NewGetItemQuery(itemID+1, orderID))
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetItemQueryHandler_NotConstructed(t *testing.T) {
	f := newFixture(t)

	_, err := queries.NewGetItemQueryHandler(f.db).Handle(context.Background(), queries.GetItemQuery{})
	require.ErrorIs(t, err, queries.ErrGetItemQueryIsNotConstructed)

	_, err = queries.NewGetItemsForOrderQueryHandler(f.db).Handle(context.Background(), queries.GetItemsForOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetItemsForOrderQueryIsNotConstructed)
}
