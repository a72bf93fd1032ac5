package http

import (
	"time"

	"foodly/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Cost     decimal.Decimal `json:"cost"`
	Category string          `json:"category"`
}

type Item struct {
	ID        int64           `json:"id"`
	OrderID   int64           `json:"order_id"`
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Cost      decimal.Decimal `json:"cost"`
	Category  string          `json:"category"`
	Diet      *string         `json:"diet,omitempty"`
}

type Cart struct {
	OrderID int64           `json:"order_id"`
	Items   []Item          `json:"items"`
	Total   decimal.Decimal `json:"total"`
}

type Order struct {
	ID           int64           `json:"id"`
	Status       string          `json:"status"`
	HandledBy    *string         `json:"handled_by,omitempty"`
	LastModified time.Time       `json:"last_modified"`
	PlacedDate   *time.Time      `json:"placed_date,omitempty"`
	Items        []Item          `json:"items"`
	Total        decimal.Decimal `json:"total"`
}

type ActiveOrders struct {
	Done      []int64 `json:"done"`
	Preparing []int64 `json:"preparing"`
}

type KitchenOrders struct {
	Placed  []int64 `json:"placed"`
	Cooking []int64 `json:"cooking"`
	Done    []int64 `json:"done"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id"`
}

type SetDietRequest struct {
	Diet string `json:"diet"`
}

type PlaceOrderRequest struct {
	HandledBy string `json:"handled_by"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

type Created struct {
	ID int64 `json:"id"`
}

func toItems(items []queries.ItemResponse) []Item {
	response := make([]Item, len(items))
	for i, item := range items {
		response[i] = toItem(item)
	}
	return response
}

func toItem(item queries.ItemResponse) Item {
	return Item{
		ID:        item.ItemID,
		OrderID:   item.OrderID,
		ProductID: item.ProductID,
		Name:      item.ProductName,
		Cost:      item.Cost,
		Category:  item.Category,
		Diet:      item.Diet,
	}
}

func toOrder(detail queries.OrderDetailResponse) Order {
	return Order{
		ID:           detail.ID,
		Status:       detail.Status.String(),
		HandledBy:    detail.HandledBy,
		LastModified: detail.LastModified,
		PlacedDate:   detail.PlacedDate,
		Items:        toItems(detail.Items),
		Total:        detail.Total,
	}
}
