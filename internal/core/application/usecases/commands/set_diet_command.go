package commands

import (
	"errors"

	"foodly/internal/pkg/guard"
)

var (
	ErrSetDietCommandIsNotConstructed = errors.New(
		"SetDietCommand must be created via NewSetDietCommand constructor",
	)
)

// SetDietCommand represents a request to change the dietary note of one item.
// An empty note clears it.
type SetDietCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	itemID  int64
	note    string

	guard guard.ConstructorGuard
}

func NewSetDietCommand(orderID, itemID int64, note string) (SetDietCommand, error) {
	cmd := SetDietCommand{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItemID(itemID),
	); err != nil {
		return SetDietCommand{}, err
	}

	return cmd, nil
}

func (c SetDietCommand) Validate() error {
	return c.guard.Validate(ErrSetDietCommandIsNotConstructed)
}

func (c SetDietCommand) OrderID() int64 {
	return c.orderID
}

func (c SetDietCommand) ItemID() int64 {
	return c.itemID
}

func (c SetDietCommand) Note() string {
	return c.note
}

func (c *SetDietCommand) setOrderID(orderID int64) error {
	if err := validateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetDietCommand) setItemID(itemID int64) error {
	if err := validateID("item id", itemID); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
