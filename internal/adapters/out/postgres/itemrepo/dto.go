// Package itemrepo persists the items of orders. Every lookup that names an
// order is scoped to it, which is how ownership of an item is enforced.
package itemrepo

import (
	"foodly/internal/adapters/out/postgres/productrepo"
	"foodly/internal/core/domain/model/order"
)

// ItemDTO represents a row of the items table. The product is preloaded on reads.
type ItemDTO struct {
	ID        int64                  `gorm:"column:item_id;primaryKey;autoIncrement"`
	OrderID   int64                  `gorm:"column:order_id;not null;index"`
	ProductID int64                  `gorm:"column:product_id;not null;index"`
	Diet      *string                `gorm:"column:diet"`
	Product   productrepo.ProductDTO `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID(),
		OrderID:   item.OrderID(),
		ProductID: item.ProductID(),
		Diet:      item.Diet(),
	}
}

// ToDomain rebuilds an item from a row whose product was preloaded.
func ToDomain(dto ItemDTO) (*order.Item, error) {
	p, err := productrepo.ToDomain(dto.Product)
	if err != nil {
		return nil, err
	}
	return order.RestoreItem(dto.ID, dto.OrderID, p, dto.Diet)
}
