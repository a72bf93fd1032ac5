package commands

import (
	"errors"

	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/guard"
)

var (
	ErrAdvanceStatusCommandIsNotConstructed = errors.New(
		"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
	)
)

// AdvanceStatusCommand represents a kitchen action moving an order to its next status.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to move orderID to status.
// Whether the move is legal is decided by the handler against the stored order.
func NewAdvanceStatusCommand(orderID int64, status order.Status) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

func (c AdvanceStatusCommand) OrderID() int64 {
	return c.orderID
}

// Status returns the requested target status.
func (c AdvanceStatusCommand) Status() order.Status {
	return c.status
}

func (c *AdvanceStatusCommand) setOrderID(orderID int64) error {
	if err := validateID("order id", orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
