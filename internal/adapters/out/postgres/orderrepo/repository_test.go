package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"foodly/internal/adapters/out/postgres/itemrepo"
	"foodly/internal/adapters/out/postgres/orderrepo"
	"foodly/internal/adapters/out/postgres/productrepo"
	"foodly/internal/adapters/out/postgres/sqlitetest"
	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/model/product"
	"foodly/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	items      *itemrepo.GormItemRepository
	productID  int64
	now        time.Time
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	suite.db = sqlitetest.Open(suite.T())
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
	suite.items = itemrepo.NewGormItemRepository(suite.db)
	suite.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	cost, err := kernel.MoneyFromFloat(65)
	suite.Require().NoError(err)
	p, err := product.NewProduct("Kebabtallrik", cost, "Pubmeny")
	suite.Require().NoError(err)
	products := productrepo.NewGormProductRepository(suite.db)
	_, err = products.Seed(context.Background(), []*product.Product{p})
	suite.Require().NoError(err)
	list, err := products.List(context.Background())
	suite.Require().NoError(err)
	suite.productID = list[0].ID()
}

func (suite *OrderRepositoryTestSuite) addCart(lastModified time.Time) int64 {
	cart, err := order.NewOrder(lastModified)
	suite.Require().NoError(err)
	id, err := suite.repository.Add(context.Background(), cart)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryTestSuite) addItem(orderID int64) int64 {
	item, err := order.NewItem(orderID, suite.productID)
	suite.Require().NoError(err)
	id, err := suite.items.Add(context.Background(), item)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderRepositoryTestSuite) TestAdd_AssignsIncreasingIDs() {
	first := suite.addCart(suite.now)
	second := suite.addCart(suite.now)

	suite.Positive(first)
	suite.Greater(second, first)
}

func (suite *OrderRepositoryTestSuite) TestGet_RestoresOrderWithItems() {
	ctx := context.Background()
	id := suite.addCart(suite.now)
	firstItem := suite.addItem(id)
	secondItem := suite.addItem(id)

	o, err := suite.repository.Get(ctx, id)

	suite.Require().NoError(err)
	suite.Equal(id, o.ID())
	suite.Equal(order.Pending, o.Status())
	suite.True(suite.now.Equal(o.LastModified()))
	suite.Nil(o.PlacedDate())
	suite.Require().Len(o.Items(), 2)
	suite.Equal(firstItem, o.Items()[0].ID())
	suite.Equal(secondItem, o.Items()[1].ID())
	suite.Equal("Kebabtallrik", o.Items()[0].Product().Name())
	suite.Equal("130", o.Total().String())
}

func (suite *OrderRepositoryTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), 404)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.GetForUpdate(context.Background(), 404)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_PersistsPlacement() {
	ctx := context.Background()
	id := suite.addCart(suite.now)
	o, err := suite.repository.GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	placedAt := suite.now.Add(10 * time.Minute)
	suite.Require().NoError(o.Place("Alva", placedAt))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	stored, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Placed, stored.Status())
	suite.Require().NotNil(stored.HandledBy())
	suite.Equal("Alva", *stored.HandledBy())
	suite.Require().NotNil(stored.PlacedDate())
	suite.True(placedAt.Equal(*stored.PlacedDate()))
}

func (suite *OrderRepositoryTestSuite) TestUpdate_DetectsConcurrentStatusChange() {
	ctx := context.Background()
	id := suite.addCart(suite.now)
	first, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Require().NoError(first.Place("Alva", suite.now))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	suite.Require().NoError(second.Place("Bengt", suite.now))
	err = suite.repository.Update(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrInvalidTransition)
	stored, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal("Alva", *stored.HandledBy())
}

func (suite *OrderRepositoryTestSuite) TestUpdate_MissingOrder() {
	ctx := context.Background()
	id := suite.addCart(suite.now)
	o, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Remove(ctx, id))

	suite.Require().NoError(o.Touch(suite.now.Add(time.Minute)))
	err = suite.repository.Update(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestRemove_CascadesItems() {
	ctx := context.Background()
	id := suite.addCart(suite.now)
	suite.addItem(id)
	suite.addItem(id)
	other := suite.addCart(suite.now)
	suite.addItem(other)

	suite.Require().NoError(suite.repository.Remove(ctx, id))

	exists, err := suite.repository.Exists(ctx, id)
	suite.Require().NoError(err)
	suite.False(exists)
	suite.assertItemCount(1)

	suite.Require().NoError(suite.repository.Remove(ctx, id))
}

func (suite *OrderRepositoryTestSuite) TestRemoveStale_OnlyAbandonedCarts() {
	ctx := context.Background()
	cutoff := suite.now.Add(-time.Hour)

	stale := suite.addCart(cutoff.Add(-time.Minute))
	suite.addItem(stale)
	fresh := suite.addCart(cutoff.Add(time.Minute))
	suite.addItem(fresh)
	boundary := suite.addCart(cutoff)

	oldPlaced := suite.addCart(cutoff.Add(-24 * time.Hour))
	suite.addItem(oldPlaced)
	o, err := suite.repository.Get(ctx, oldPlaced)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Place("Alva", cutoff.Add(-23*time.Hour)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	removed, err := suite.repository.RemoveStale(ctx, cutoff)

	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)
	for id, expected := range map[int64]bool{stale: false, fresh: true, boundary: true, oldPlaced: true} {
		exists, err := suite.repository.Exists(ctx, id)
		suite.Require().NoError(err)
		suite.Equal(expected, exists, "order %d", id)
	}
	suite.assertItemCount(2)

	removed, err = suite.repository.RemoveStale(ctx, cutoff)
	suite.Require().NoError(err)
	suite.Zero(removed)
}

func (suite *OrderRepositoryTestSuite) assertItemCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&itemrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
