package product

import (
	"errors"
	"fmt"
	"strings"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product is one purchasable catalog entry.
type Product struct {
	// id is zero until the product has been persisted
	id int64

	name string

	cost kernel.Money

	category string

	isConstructed bool
}

// NewProduct creates a catalog entry that has not been persisted yet.
// Used when seeding the menu.
func NewProduct(name string, cost kernel.Money, category string) (*Product, error) {
	p := &Product{
		category:      strings.TrimSpace(category),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setCost(cost),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id int64, name string, cost kernel.Money, category string) (*Product, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not a valid id", id))
	}

	p, err := NewProduct(name, cost, category)
	if err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Cost() kernel.Money {
	return p.cost
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	p.cost = cost
	return nil
}
