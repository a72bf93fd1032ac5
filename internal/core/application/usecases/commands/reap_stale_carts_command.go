package commands

import (
	"errors"

	"foodly/internal/pkg/guard"
)

var (
	ErrReapStaleCartsCommandIsNotConstructed = errors.New(
		"ReapStaleCartsCommand must be created via NewReapStaleCartsCommand constructor",
	)
)

// ReapStaleCartsCommand requests a sweep of abandoned carts outside of cart
// creation, for the optional background job.
type ReapStaleCartsCommand struct {
	guard guard.ConstructorGuard
}

func NewReapStaleCartsCommand() ReapStaleCartsCommand {
	return ReapStaleCartsCommand{guard: guard.NewConstructorGuard()}
}

func (c ReapStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrReapStaleCartsCommandIsNotConstructed)
}
