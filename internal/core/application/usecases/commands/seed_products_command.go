package commands

import (
	"errors"
	"fmt"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/product"
	"foodly/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrSeedProductsCommandIsNotConstructed = errors.New(
		"SeedProductsCommand must be created via NewSeedProductsCommand constructor",
	)
)

// MenuEntry is one product to provision.
type MenuEntry struct {
	Name     string
	Cost     decimal.Decimal
	Category string
}

// DefaultMenu returns the menu the restaurant opens with.
func DefaultMenu() []MenuEntry {
	return []MenuEntry{
		{Name: "Kebabtallrik", Cost: decimal.NewFromInt(65), Category: "Pubmeny"},
		{Name: "Hamburgaretallrik", Cost: decimal.NewFromInt(65), Category: "Pubmeny"},
		{Name: "Pommestallrik", Cost: decimal.NewFromInt(50), Category: "Pubmeny"},
		{Name: "Schnitzel", Cost: decimal.NewFromInt(70), Category: "23 meny"},
		{Name: "Glass", Cost: decimal.NewFromInt(30), Category: "23 meny"},
		{Name: "Kladdkaka", Cost: decimal.NewFromInt(35), Category: "23 meny"},
		{Name: "Nacho tallrik", Cost: decimal.NewFromInt(55), Category: "Pubmeny"},
	}
}

// SeedProductsCommand represents an idempotent catalog provisioning request.
type SeedProductsCommand struct { //nolint:recvcheck //using for validation
	products []*product.Product

	guard guard.ConstructorGuard
}

// NewSeedProductsCommand validates every entry; all invalid entries are
// reported together.
func NewSeedProductsCommand(entries []MenuEntry) (SeedProductsCommand, error) {
	cmd := SeedProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setProducts(entries); err != nil {
		return SeedProductsCommand{}, err
	}

	return cmd, nil
}

func (c SeedProductsCommand) Validate() error {
	return c.guard.Validate(ErrSeedProductsCommandIsNotConstructed)
}

// Products returns the products to insert.
func (c SeedProductsCommand) Products() []*product.Product {
	return c.products
}

func (c *SeedProductsCommand) setProducts(entries []MenuEntry) error {
	products := make([]*product.Product, 0, len(entries))
	var errList []error

	for i, entry := range entries {
		cost, err := kernel.NewMoney(entry.Cost)
		if err != nil {
			errList = append(errList, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		p, err := product.NewProduct(entry.Name, cost, entry.Category)
		if err != nil {
			errList = append(errList, fmt.Errorf("entry %d: %w", i, err))
			continue
		}
		products = append(products, p)
	}

	if err := errors.Join(errList...); err != nil {
		return err
	}

	c.products = products
	return nil
}
