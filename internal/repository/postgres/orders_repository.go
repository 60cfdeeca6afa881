package postgres

import (
	"context"
	"fmt"
	"shopsight/domain"

	"gorm.io/gorm"
)

type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

func (r *OrdersRepository) CreateBatch(ctx context.Context, orders []domain.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(orders) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).CreateInBatches(orders, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create orders: %w", err)
	}

	return nil
}

// FindByStore returns a store's orders newest first. created_at is RFC3339
// text, so the column sorts chronologically.
func (r *OrdersRepository) FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var orders []domain.Order
	err := r.DB.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) DeleteByStore(ctx context.Context, storeID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&domain.Order{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete orders: %w", err)
	}

	return nil
}
