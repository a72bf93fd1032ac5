// Package session binds anonymous clients to their carts.
//
// A client carries an opaque token. The Binder maps the token to the id of a
// Pending order through a ports.SessionStore and opens a new cart whenever the
// token is unknown, expired, or points at an order that is gone or has already
// been placed.
package session

import (
	"context"
	"log/slog"

	"foodly/internal/core/application/usecases/commands"
	"foodly/internal/core/application/usecases/queries"
	"foodly/internal/core/domain/services"
	"foodly/internal/core/ports"
	"foodly/internal/pkg/errs"

	"github.com/google/uuid"
)

// Binding is a token together with the cart it refers to.
type Binding struct {
	Token   string
	OrderID int64
	Created bool
}

// Binder resolves session tokens to carts.
type Binder struct {
	store       ports.SessionStore
	createOrder commands.CreateOrderCommandHandler
	placeOrder  commands.PlaceOrderCommandHandler
	removeOrder commands.RemoveOrderCommandHandler
	cartExists  queries.CartExistsQueryHandler
	policy      services.StalenessPolicy
	logger      *slog.Logger
}

func NewBinder(
	store ports.SessionStore,
	createOrder commands.CreateOrderCommandHandler,
	placeOrder commands.PlaceOrderCommandHandler,
	removeOrder commands.RemoveOrderCommandHandler,
	cartExists queries.CartExistsQueryHandler,
	policy services.StalenessPolicy,
	logger *slog.Logger,
) *Binder {
	return &Binder{
		store:       store,
		createOrder: createOrder,
		placeOrder:  placeOrder,
		removeOrder: removeOrder,
		cartExists:  cartExists,
		policy:      policy,
		logger:      logger.With("component", "session_binder"),
	}
}

// Resolve returns the cart bound to token, creating a cart and a fresh token
// when there is none. The binding's expiry restarts on every call.
func (b *Binder) Resolve(ctx context.Context, token string) (Binding, error) {
	orderID, ok, err := b.lookup(ctx, token)
	if err != nil {
		return Binding{}, err
	}
	if ok {
		if err = b.store.Put(ctx, token, orderID, b.policy.Window()); err != nil {
			return Binding{}, err
		}
		return Binding{Token: token, OrderID: orderID}, nil
	}

	orderID, err = b.createOrder.Handle(ctx, commands.NewCreateOrderCommand())
	if err != nil {
		return Binding{}, err
	}

	fresh := uuid.NewString()
	if err = b.store.Put(ctx, fresh, orderID, b.policy.Window()); err != nil {
		return Binding{}, err
	}

	b.logger.DebugContext(ctx, "cart opened", "order_id", orderID)
	return Binding{Token: fresh, OrderID: orderID, Created: true}, nil
}

// Current returns the cart bound to token without creating one.
func (b *Binder) Current(ctx context.Context, token string) (int64, bool, error) {
	orderID, ok, err := b.lookup(ctx, token)
	if err != nil || !ok {
		return 0, false, err
	}
	if err = b.store.Put(ctx, token, orderID, b.policy.Window()); err != nil {
		return 0, false, err
	}
	return orderID, true, nil
}

// Place submits the bound cart under the customer's name and releases the
// token. The next Resolve with the same token opens a new cart.
func (b *Binder) Place(ctx context.Context, token, handledBy string) (int64, error) {
	orderID, ok, err := b.Current(ctx, token)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errs.NewObjectNotFoundError("cart", token)
	}

	cmd, err := commands.NewPlaceOrderCommand(orderID, handledBy)
	if err != nil {
		return 0, err
	}
	if err = b.placeOrder.Handle(ctx, cmd); err != nil {
		return 0, err
	}

	b.logger.InfoContext(ctx, "order placed", "order_id", orderID)
	if err = b.Release(ctx, token); err != nil {
		b.logger.WarnContext(ctx, "release token after place", "order_id", orderID, "error", err)
	}
	return orderID, nil
}

// Discard removes the bound cart with its items and releases the token.
// Discarding without a bound cart does nothing.
func (b *Binder) Discard(ctx context.Context, token string) error {
	orderID, ok, err := b.lookup(ctx, token)
	if err != nil || !ok {
		return err
	}

	cmd, err := commands.NewRemoveOrderCommand(orderID)
	if err != nil {
		return err
	}
	if err = b.removeOrder.Handle(ctx, cmd); err != nil {
		return err
	}

	b.logger.DebugContext(ctx, "cart discarded", "order_id", orderID)
	return b.Release(ctx, token)
}

// Release forgets token. The order it pointed at is left untouched.
func (b *Binder) Release(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return b.store.Delete(ctx, token)
}

// lookup returns the order bound to token if it is still a cart. A binding to
// a vanished order, for instance one reaped as stale, or to an order placed
// elsewhere is dropped.
func (b *Binder) lookup(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}

	orderID, found, err := b.store.Get(ctx, token)
	if err != nil || !found {
		return 0, false, err
	}

	if !b.cartExists.Handle(ctx, queries.NewCartExistsQuery(orderID)) {
		if err = b.store.Delete(ctx, token); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	return orderID, true, nil
}
