package commands

import (
	"errors"

	"foodly/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to open a new, empty cart.
//
// Example:
//
//	cmd := NewCreateOrderCommand()
//	handler := NewCreateOrderCommandHandler(uowFactory, kernel.SystemClock{}, services.NewDefaultStalenessPolicy())
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create cart: %w", err)
//	}
type CreateOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a cart. The command has no parameters.
func NewCreateOrderCommand() CreateOrderCommand {
	return CreateOrderCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
