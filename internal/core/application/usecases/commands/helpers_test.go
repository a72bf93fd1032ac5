package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"foodly/internal/adapters/out/postgres"
	"foodly/internal/adapters/out/postgres/sqlitetest"
	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/services"
	"foodly/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Mocks

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (int64, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// SQLite-backed store

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

// manualClock is a clock tests move forward explicitly.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type store struct {
	db      *gorm.DB
	factory *postgres.GormUnitOfWorkFactory
	clock   *manualClock
	policy  services.StalenessPolicy
	menu    map[string]int64
}

func newStore(t *testing.T) *store {
	t.Helper()
	db := sqlitetest.Open(t)
	s := &store{
		db:      db,
		factory: postgres.NewGormUnitOfWorkFactory(db),
		clock:   &manualClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)},
		policy:  services.NewDefaultStalenessPolicy(),
		menu:    make(map[string]int64),
	}

	seed := commands.NewSeedProductsCommandHandler(s.catalogFactory())
	cmd, err := commands.NewSeedProductsCommand(commands.DefaultMenu())
	require.NoError(t, err)
	_, err = seed.Handle(context.Background(), cmd)
	require.NoError(t, err)

	products, err := s.factory.Create().ProductRepository().List(context.Background())
	require.NoError(t, err)
	for _, p := range products {
		s.menu[p.Name()] = p.ID()
	}
	return s
}

func (s *store) orderFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return s.factory.Create() })
}

func (s *store) cartFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW { return s.factory.Create() })
}

func (s *store) catalogFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW { return s.factory.Create() })
}

func (s *store) createOrder(t *testing.T) int64 {
	t.Helper()
	h := commands.NewCreateOrderCommandHandler(s.orderFactory(), s.clock, s.policy)
	id, err := h.Handle(context.Background(), commands.NewCreateOrderCommand())
	require.NoError(t, err)
	return id
}

func (s *store) addItem(t *testing.T, orderID int64, productName string) int64 {
	t.Helper()
	productID, ok := s.menu[productName]
	require.True(t, ok, "unknown product %s", productName)
	cmd, err := commands.NewAddItemCommand(orderID, productID)
	require.NoError(t, err)
	h := commands.NewAddItemCommandHandler(s.cartFactory(), s.clock)
	id, err := h.Handle(context.Background(), cmd)
	require.NoError(t, err)
	return id
}

func (s *store) placeOrder(orderID int64, handledBy string) error {
	cmd, err := commands.NewPlaceOrderCommand(orderID, handledBy)
	if err != nil {
		return err
	}
	h := commands.NewPlaceOrderCommandHandler(s.orderFactory(), s.clock)
	return h.Handle(context.Background(), cmd)
}

func (s *store) advance(orderID int64, status order.Status) error {
	cmd, err := commands.NewAdvanceStatusCommand(orderID, status)
	if err != nil {
		return err
	}
	h := commands.NewAdvanceStatusCommandHandler(s.orderFactory())
	return h.Handle(context.Background(), cmd)
}

func (s *store) getOrder(t *testing.T, orderID int64) *order.Order {
	t.Helper()
	o, err := s.factory.Create().OrderRepository().Get(context.Background(), orderID)
	require.NoError(t, err)
	return o
}

func (s *store) orderExists(t *testing.T, orderID int64) bool {
	t.Helper()
	exists, err := s.factory.Create().OrderRepository().Exists(context.Background(), orderID)
	require.NoError(t, err)
	return exists
}

func (s *store) itemCount(t *testing.T, orderID int64) int64 {
	t.Helper()
	var count int64
	err := s.db.Raw(`SELECT COUNT(*) FROM items WHERE order_id = ?`, orderID).Scan(&count).Error
	require.NoError(t, err)
	return count
}

