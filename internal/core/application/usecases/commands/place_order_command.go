package commands

import (
	"errors"
	"strings"

	"foodly/internal/pkg/errs"
	"foodly/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)

	// ErrCartIsEmpty is returned when placing a cart without items.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// PlaceOrderCommand represents a customer submitting a cart to the kitchen.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(orderID, "Anna")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); errors.Is(err, ErrCartIsEmpty) {
//	    // ask the customer to add something first
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	handledBy string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place orderID on behalf of handledBy.
// The name is required; surrounding whitespace is dropped.
func NewPlaceOrderCommand(orderID int64, handledBy string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setHandledBy(handledBy),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() int64 {
	return c.orderID
}

// HandledBy returns the name of the customer placing the order.
func (c PlaceOrderCommand) HandledBy() string {
	return c.handledBy
}

func (c *PlaceOrderCommand) setOrderID(orderID int64) error {
	if err := validateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setHandledBy(handledBy string) error {
	handledBy = strings.TrimSpace(handledBy)
	if handledBy == "" {
		return errs.NewValueIsRequiredError("handled by")
	}

	c.handledBy = handledBy
	return nil
}
