package commands_test

import (
	"errors"
	"testing"
	"time"

	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_CreatesEmptyCart(t *testing.T) {
	s := newStore(t)

	id := s.createOrder(t)

	o := s.getOrder(t, id)
	assert.Equal(t, order.Pending, o.Status())
	assert.Nil(t, o.HandledBy())
	assert.Nil(t, o.PlacedDate())
	assert.True(t, s.clock.Now().Equal(o.LastModified()))
	assert.Empty(t, o.Items())
}

func TestCreateOrderCommandHandler_Handle_ReapsAbandonedCarts(t *testing.T) {
	s := newStore(t)
	abandoned := s.createOrder(t)
	s.addItem(t, abandoned, "Kebabtallrik")
	placed := s.createOrder(t)
	s.addItem(t, placed, "Glass")
	require.NoError(t, s.placeOrder(placed, "Bo"))

	s.clock.Advance(services.DefaultStalenessWindow + time.Minute)
	fresh := s.createOrder(t)

	assert.False(t, s.orderExists(t, abandoned))
	assert.Zero(t, s.itemCount(t, abandoned))
	assert.True(t, s.orderExists(t, placed))
	assert.True(t, s.orderExists(t, fresh))
	assert.Zero(t, s.itemCount(t, fresh))
}

func TestCreateOrderCommandHandler_Handle_KeepsCartsWithinWindow(t *testing.T) {
	s := newStore(t)
	cart := s.createOrder(t)

	s.clock.Advance(services.DefaultStalenessWindow - time.Minute)
	s.createOrder(t)

	assert.True(t, s.orderExists(t, cart))
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, &manualClock{now: time.Now()}, services.NewDefaultStalenessPolicy())

	_, err := h.Handle(ctx, commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, &manualClock{now: time.Now()}, services.NewDefaultStalenessPolicy())
	_, err := h.Handle(ctx, commands.NewCreateOrderCommand())

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ReapErrorAbortsInsert(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("RemoveStale", ctx, now.Add(-time.Hour)).Return(int64(0), errors.New("reap error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, &manualClock{now: now}, services.NewDefaultStalenessPolicy())
	_, err := h.Handle(ctx, commands.NewCreateOrderCommand())

	require.EqualError(t, err, "reap error")
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("RemoveStale", ctx, mock.AnythingOfType("time.Time")).Return(int64(2), nil).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(int64(11), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, &manualClock{now: time.Now()}, services.NewDefaultStalenessPolicy())
	id, err := h.Handle(ctx, commands.NewCreateOrderCommand())

	require.EqualError(t, err, "commit error")
	assert.Zero(t, id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
