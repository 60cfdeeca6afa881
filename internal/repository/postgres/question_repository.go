package postgres

import (
	"context"
	"fmt"
	"shopsight/domain"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		DB: db,
	}
}

func (r *QuestionRepository) Create(ctx context.Context, question *domain.Question) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}

	return nil
}

// FindByStore returns question history newest first.
func (r *QuestionRepository) FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var questions []domain.Question
	err := r.DB.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("created_at desc").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find questions: %w", err)
	}

	return questions, nil
}

func (r *QuestionRepository) DeleteByStore(ctx context.Context, storeID string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Where("store_id = ?", storeID).Delete(&domain.Question{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}

	return nil
}
