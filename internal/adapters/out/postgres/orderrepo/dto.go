// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"foodly/internal/adapters/out/postgres/itemrepo"
	"foodly/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and last_modified are indexed for the kitchen listings and the reaper.
type OrderDTO struct {
	ID           int64              `gorm:"column:order_id;primaryKey;autoIncrement"`
	PlacedDate   *time.Time         `gorm:"column:placed_date"`
	LastModified time.Time          `gorm:"column:last_modified;not null;index"`
	HandledBy    *string            `gorm:"column:handled_by"`
	Status       int                `gorm:"column:status;not null;index"`
	Items        []itemrepo.ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its row. Items are persisted
// through the item repository and are not part of the row.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID(),
		PlacedDate:   aggregate.PlacedDate(),
		LastModified: aggregate.LastModified(),
		HandledBy:    aggregate.HandledBy(),
		Status:       int(aggregate.Status()),
	}
}

// toDomain converts a row with preloaded items to an order aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items, err := itemrepo.ToDomainList(dto.Items)
	if err != nil {
		return nil, err
	}

	var placedDate *time.Time
	if dto.PlacedDate != nil {
		utc := dto.PlacedDate.UTC()
		placedDate = &utc
	}

	return order.RestoreOrder(
		dto.ID,
		order.Status(dto.Status),
		dto.HandledBy,
		dto.LastModified.UTC(),
		placedDate,
		items,
	)
}
