package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodly/internal/adapters/out/postgres/itemrepo"
	"foodly/internal/core/domain/model/order"
	"foodly/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database and returns its id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (int64, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return 0, err
	}

	return dto.ID, nil
}

// Update saves an existing order, guarded by the status it was loaded with.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id = ? AND status = ?", dto.ID, int(aggregate.OriginalStatus())).
		Updates(map[string]any{
			"status":        dto.Status,
			"handled_by":    dto.HandledBy,
			"placed_date":   dto.PlacedDate,
			"last_modified": dto.LastModified,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		exists, err := r.Exists(ctx, dto.ID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		return errs.NewInvalidTransitionErrorWithCause(
			aggregate.OriginalStatus().String(),
			aggregate.Status().String(),
			errors.New("order status was changed concurrently"),
		)
	}

	return nil
}

// Get retrieves an order with its items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order and locks its row for the rest of the transaction.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) get(_ context.Context, db *gorm.DB, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("item_id ASC") }).
		Preload("Items.Product").
		First(&dto, "order_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Exists reports whether an order with id is stored.
func (r *GormOrderRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("order_id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Remove deletes the order, items first.
func (r *GormOrderRepository) Remove(ctx context.Context, id int64) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("order_id = ?", id).Delete(&itemrepo.ItemDTO{}).Error; err != nil {
		return err
	}
	return db.Where("order_id = ?", id).Delete(&OrderDTO{}).Error
}

// RemoveStale deletes every Pending order untouched since before cutoff.
// The candidate rows are locked first so an order that gets placed or touched
// concurrently is either reaped before that change or not at all.
func (r *GormOrderRepository) RemoveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	db := r.db.WithContext(ctx)

	var ids []int64
	err := db.Model(&OrderDTO{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND last_modified < ?", int(order.Pending), cutoff).
		Order("order_id ASC").
		Pluck("order_id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := db.Where("order_id IN ?", ids).Delete(&itemrepo.ItemDTO{}).Error; err != nil {
		return 0, err
	}

	result := db.
		Where("order_id IN ? AND status = ? AND last_modified < ?", ids, int(order.Pending), cutoff).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
