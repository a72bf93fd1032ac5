package commands_test

import (
	"testing"
	"time"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func restoreCartWithItem(t *testing.T, id int64, lastModified time.Time) *order.Order {
	t.Helper()
	cost, err := kernel.MoneyFromFloat(65)
	require.NoError(t, err)
	p, err := product.RestoreProduct(1, "Kebabtallrik", cost, "Pubmeny")
	require.NoError(t, err)
	item, err := order.RestoreItem(1, id, p, nil)
	require.NoError(t, err)
	cart, err := order.RestoreOrder(id, order.Pending, nil, lastModified, nil, []*order.Item{item})
	require.NoError(t, err)
	return cart
}
