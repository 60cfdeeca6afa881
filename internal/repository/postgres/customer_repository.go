package postgres

import (
	"context"
	"fmt"
	"shopsight/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		DB: db,
	}
}

func (r *CustomerRepository) CreateBatch(ctx context.Context, customers []domain.Customer) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(customers) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).CreateInBatches(customers, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create customers: %w", err)
	}

	return nil
}

func (r *CustomerRepository) FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var customers []domain.Customer
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Limit(limit).Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find customers: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) DeleteByStore(ctx context.Context, storeID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&domain.Customer{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete customers: %w", err)
	}

	return nil
}
