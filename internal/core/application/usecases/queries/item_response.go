package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemResponse is one item with its product resolved.
type ItemResponse struct {
	ItemID      int64
	OrderID     int64
	ProductID   int64
	ProductName string
	Cost        decimal.Decimal
	Category    string
	Diet        *string
}

// SumItems returns the total cost of items.
func SumItems(items []ItemResponse) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Cost)
	}
	return total
}

const selectItems = `
	SELECT
		i.item_id,
		i.order_id,
		i.product_id,
		p.name,
		p.cost,
		p.category,
		i.diet
	FROM items i
	JOIN products p ON p.product_id = i.product_id
`

func scanItems(ctx context.Context, db *gorm.DB, where string, args ...any) ([]ItemResponse, error) {
	items := make([]ItemResponse, 0)

	rows, err := db.WithContext(ctx).Raw(selectItems+where+` ORDER BY i.item_id`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ItemResponse
		err = rows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.Cost,
			&item.Category,
			&item.Diet,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
