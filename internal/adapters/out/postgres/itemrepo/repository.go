package itemrepo

import (
	"context"
	"errors"

	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository using GORM.
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GORM item repository.
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Add inserts a new item and returns its id.
func (r *GormItemRepository) Add(ctx context.Context, item *order.Item) (int64, error) {
	if err := item.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(item)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return 0, errs.NewReferentialViolationErrorWithCause("product", item.ProductID(), err)
		}
		return 0, err
	}

	return dto.ID, nil
}

// Get retrieves itemID if it belongs to orderID.
func (r *GormItemRepository) Get(ctx context.Context, itemID, orderID int64) (*order.Item, error) {
	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Preload("Product").
		First(&dto, "item_id = ? AND order_id = ?", itemID, orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", itemID)
		}
		return nil, err
	}
	return ToDomain(dto)
}

// Exists reports whether itemID exists under any order.
func (r *GormItemRepository) Exists(ctx context.Context, itemID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemDTO{}).Where("item_id = ?", itemID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update writes the item's diet.
func (r *GormItemRepository) Update(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("item_id = ? AND order_id = ?", item.ID(), item.OrderID()).
		Update("diet", item.Diet())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID())
	}

	return nil
}

// Remove deletes itemID from orderID.
func (r *GormItemRepository) Remove(ctx context.Context, itemID, orderID int64) (bool, error) {
	result := r.db.WithContext(ctx).Where("item_id = ? AND order_id = ?", itemID, orderID).Delete(&ItemDTO{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// ToDomainList converts preloaded rows into items.
func ToDomainList(dtos []ItemDTO) ([]*order.Item, error) {
	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
