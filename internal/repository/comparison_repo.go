package repository

import (
	"context"

	"solarquote/internal/model"

	"gorm.io/gorm"
)

type ComparisonRepository interface {
	Create(ctx context.Context, cmp *model.QuoteComparison) error
}

type comparisonRepository struct {
	db *gorm.DB
}

func NewComparisonRepository(db *gorm.DB) ComparisonRepository {
	return &comparisonRepository{db: db}
}

func (r *comparisonRepository) Create(ctx context.Context, cmp *model.QuoteComparison) error {
	return GetDB(ctx, r.db).Create(cmp).Error
}
