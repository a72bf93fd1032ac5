// Package productrepo persists the catalog. Products are identified by an
// auto-incremented id and are unique by name, which makes seeding idempotent.
package productrepo

import (
	"foodly/internal/core/domain/model/kernel"
	"foodly/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents a row of the products table.
type ProductDTO struct {
	ID       int64           `gorm:"column:product_id;primaryKey;autoIncrement"`
	Name     string          `gorm:"column:name;not null;uniqueIndex"`
	Cost     decimal.Decimal `gorm:"column:cost;type:decimal(10,2);not null"`
	Category string          `gorm:"column:category;not null;default:''"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:       p.ID(),
		Name:     p.Name(),
		Cost:     p.Cost().Decimal(),
		Category: p.Category(),
	}
}

// ToDomain rebuilds a product from its row. Other repositories use it for
// the products they preload.
func ToDomain(dto ProductDTO) (*product.Product, error) {
	cost, err := kernel.NewMoney(dto.Cost)
	if err != nil {
		return nil, err
	}
	return product.RestoreProduct(dto.ID, dto.Name, cost, dto.Category)
}
