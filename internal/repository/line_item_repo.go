package repository

import (
	"context"

	"solarquote/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LineItemRepository interface {
	CreateBatch(ctx context.Context, items []model.QuotationLineItem) error
	ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]model.QuotationLineItem, error)
}

type lineItemRepository struct {
	db *gorm.DB
}

func NewLineItemRepository(db *gorm.DB) LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) CreateBatch(ctx context.Context, items []model.QuotationLineItem) error {
	if len(items) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).Create(&items).Error
}

func (r *lineItemRepository) ListByQuotation(ctx context.Context, quotationID uuid.UUID) ([]model.QuotationLineItem, error) {
	var items []model.QuotationLineItem
	err := GetDB(ctx, r.db).
		Where("quotation_id = ?", quotationID).
		Order("position ASC").
		Find(&items).Error
	return items, err
}
