package order

import (
	"errors"
	"fmt"
	"strings"

	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/product"
	"foodly/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one unit of a product in an order, optionally annotated with a
// dietary note.
type Item struct {
	// id is zero until the item has been persisted
	id int64

	orderID int64

	productID int64

	// product is the resolved catalog entry, nil for items not yet persisted
	product *product.Product

	diet *string

	isConstructed bool
}

// NewItem creates an item for productID in orderID.
func NewItem(orderID, productID int64) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setProductID(productID),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem rebuilds a persisted item together with its product.
func RestoreItem(id, orderID int64, p *product.Product, diet *string) (*Item, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("item id", fmt.Errorf("%d is not a valid id", id))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	item, err := NewItem(orderID, p.ID())
	if err != nil {
		return nil, err
	}
	item.id = id
	item.product = p
	item.diet = normalizeDiet(diet)
	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) OrderID() int64 {
	return i.orderID
}

func (i *Item) ProductID() int64 {
	return i.productID
}

// Product returns the resolved catalog entry, nil if it was not loaded.
func (i *Item) Product() *product.Product {
	return i.product
}

// Diet returns the dietary note, nil when none is set.
func (i *Item) Diet() *string {
	return copyString(i.diet)
}

// SetDiet replaces the dietary note. A blank note clears it.
func (i *Item) SetDiet(note string) {
	i.diet = normalizeDiet(&note)
}

// BelongsTo reports whether the item is part of orderID.
func (i *Item) BelongsTo(orderID int64) bool {
	return i.orderID == orderID
}

// Total sums the product cost of items. Items without a resolved product do
// not contribute.
func Total(items []*Item) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		if item == nil || item.product == nil {
			continue
		}
		total = total.Add(item.product.Cost())
	}
	return total
}

func (i *Item) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not a valid id", orderID))
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setProductID(productID int64) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not a valid id", productID))
	}
	i.productID = productID
	return nil
}

func normalizeDiet(diet *string) *string {
	if diet == nil {
		return nil
	}
	note := strings.TrimSpace(*diet)
	if note == "" {
		return nil
	}
	return &note
}
