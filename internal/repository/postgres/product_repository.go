package postgres

import (
	"context"
	"fmt"
	"shopsight/domain"

	"gorm.io/gorm"
)

const insertBatchSize = 100

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if len(products) == 0 {
		return nil
	}

	if err := r.DB.WithContext(ctx).CreateInBatches(products, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Limit(limit).Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) DeleteByStore(ctx context.Context, storeID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&domain.Product{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete products: %w", err)
	}

	return nil
}
