package queries_test

import (
	"context"
	"testing"
	"time"

	"foodly/internal/adapters/out/postgres"
	"foodly/internal/adapters/out/postgres/sqlitetest"
	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/model/product"
	"foodly/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	db   *gorm.DB
	uow  ports.UnitOfWork
	menu map[string]int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := sqlitetest.Open(t)
	f := &fixture{
		db:   db,
		uow:  postgres.NewGormUnitOfWorkFactory(db).Create(),
		menu: make(map[string]int64),
	}

	menu := []struct {
		name     string
		cost     int64
		category string
	}{
		{"Kebabtallrik", 65, "Pubmeny"},
		{"Pommestallrik", 50, "Pubmeny"},
		{"Schnitzel", 70, "23 meny"},
		{"Glass", 30, "23 meny"},
	}
	products := make([]*product.Product, 0, len(menu))
	for _, m := range menu {
		cost, err := kernel.NewMoney(decimal.NewFromInt(m.cost))
		require.NoError(t, err)
		p, err := product.NewProduct(m.name, cost, m.category)
		require.NoError(t, err)
		products = append(products, p)
	}
	_, err := f.uow.ProductRepository().Seed(context.Background(), products)
	require.NoError(t, err)

	stored, err := f.uow.ProductRepository().List(context.Background())
	require.NoError(t, err)
	for _, p := range stored {
		f.menu[p.Name()] = p.ID()
	}
	return f
}

func (f *fixture) cart(t *testing.T, productNames ...string) int64 {
	t.Helper()
	ctx := context.Background()

	o, err := order.NewOrder(t0)
	require.NoError(t, err)
	orderID, err := f.uow.OrderRepository().Add(ctx, o)
	require.NoError(t, err)

	for _, name := range productNames {
		productID, ok := f.menu[name]
		require.True(t, ok, "unknown product %s", name)
		item, err := order.NewItem(orderID, productID)
		require.NoError(t, err)
		_, err = f.uow.ItemRepository().Add(ctx, item)
		require.NoError(t, err)
	}
	return orderID
}

func (f *fixture) placed(t *testing.T, status order.Status, productNames ...string) int64 {
	t.Helper()
	ctx := context.Background()
	orderID := f.cart(t, productNames...)

	o, err := f.uow.OrderRepository().Get(ctx, orderID)
	require.NoError(t, err)
	require.NoError(t, o.Place("Alice", t0.Add(time.Minute)))
	require.NoError(t, f.uow.OrderRepository().Update(ctx, o))

	for current := order.Placed; current < status; current++ {
		o, err = f.uow.OrderRepository().Get(ctx, orderID)
		require.NoError(t, err)
		require.NoError(t, o.Advance(current+1))
		require.NoError(t, f.uow.OrderRepository().Update(ctx, o))
	}
	return orderID
}

func (f *fixture) setDiet(t *testing.T, orderID, itemID int64, note string) {
	t.Helper()
	ctx := context.Background()
	item, err := f.uow.ItemRepository().Get(ctx, itemID, orderID)
	require.NoError(t, err)
	item.SetDiet(note)
	require.NoError(t, f.uow.ItemRepository().Update(ctx, item))
}

func (f *fixture) itemIDs(t *testing.T, orderID int64) []int64 {
	t.Helper()
	o, err := f.uow.OrderRepository().Get(context.Background(), orderID)
	require.NoError(t, err)
	ids := make([]int64, 0, len(o.Items()))
	for _, item := range o.Items() {
		ids = append(ids, item.ID())
	}
	return ids
}
