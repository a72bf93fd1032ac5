package productrepo_test

import (
	"context"
	"testing"

	"foodly/internal/adapters/out/postgres/productrepo"
	"foodly/internal/adapters/out/postgres/sqlitetest"
	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProduct(t *testing.T, name string, cost float64, category string) *product.Product {
	t.Helper()
	money, err := kernel.MoneyFromFloat(cost)
	require.NoError(t, err)
	p, err := product.NewProduct(name, money, category)
	require.NoError(t, err)
	return p
}

func TestGormProductRepository_Seed(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewGormProductRepository(sqlitetest.Open(t))

	t.Run("should insert new names and ignore existing ones", func(t *testing.T) {
		inserted, err := repo.Seed(ctx, []*product.Product{
			newProduct(t, "Kebabtallrik", 65, "Pubmeny"),
			newProduct(t, "Glass", 30, "23 meny"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), inserted)

		inserted, err = repo.Seed(ctx, []*product.Product{
			newProduct(t, "Kebabtallrik", 99, "Pubmeny"),
			newProduct(t, "Kladdkaka", 35, "23 meny"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), inserted)

		products, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		for _, p := range products {
			if p.Name() == "Kebabtallrik" {
				assert.Equal(t, "65", p.Cost().String())
			}
		}
	})

	t.Run("should reject unconstructed products", func(t *testing.T) {
		_, err := repo.Seed(ctx, []*product.Product{{}})

		require.ErrorIs(t, err, product.ErrProductIsNotConstructed)
	})
}

func TestGormProductRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewGormProductRepository(sqlitetest.Open(t))

	_, err := repo.Seed(ctx, []*product.Product{
		newProduct(t, "Schnitzel", 70, "23 meny"),
		newProduct(t, "Kebabtallrik", 65, "Pubmeny"),
		newProduct(t, "Glass", 30, "23 meny"),
		newProduct(t, "Pommestallrik", 50, "Pubmeny"),
	})
	require.NoError(t, err)

	products, err := repo.List(ctx)

	require.NoError(t, err)
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"Kebabtallrik", "Pommestallrik", "Schnitzel", "Glass"}, names)
}

func TestGormProductRepository_Exists(t *testing.T) {
	ctx := context.Background()
	repo := productrepo.NewGormProductRepository(sqlitetest.Open(t))
	_, err := repo.Seed(ctx, []*product.Product{newProduct(t, "Nacho tallrik", 55, "Pubmeny")})
	require.NoError(t, err)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	id := products[0].ID()

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, id+100)
	require.NoError(t, err)
	assert.False(t, exists)
}
