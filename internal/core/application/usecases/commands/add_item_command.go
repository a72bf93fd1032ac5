package commands

import (
	"errors"

	"foodly/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a request to put one unit of a product in a cart.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	productID int64

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add productID to the cart orderID.
func NewAddItemCommand(orderID, productID int64) (AddItemCommand, error) {
	cmd := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductID(productID),
	); err != nil {
		return AddItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

func (c AddItemCommand) OrderID() int64 {
	return c.orderID
}

func (c AddItemCommand) ProductID() int64 {
	return c.productID
}

func (c *AddItemCommand) setOrderID(orderID int64) error {
	if err := validateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setProductID(productID int64) error {
	if err := validateID("product id", productID); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
