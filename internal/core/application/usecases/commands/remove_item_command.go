package commands

import (
	"errors"

	"foodly/internal/pkg/guard"
)

var (
	ErrRemoveItemCommandIsNotConstructed = errors.New(
		"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
	)
)

// RemoveItemCommand represents a request to take one item out of a cart.
// The claimed owning order is part of the command and is verified by the handler.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64

	guard guard.ConstructorGuard
}

func NewRemoveItemCommand(orderID, itemID int64) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return cmd, nil
}

func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

func (c RemoveItemCommand) OrderID() int64 {
	return c.orderID
}

func (c RemoveItemCommand) ItemID() int64 {
	return c.itemID
}

func (c *RemoveItemCommand) setOrderID(orderID int64) error {
	if err := validateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID int64) error {
	if err := validateID("item id", itemID); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
