package repository

import (
	"context"

	"solarquote/internal/model"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuoteRequestFilter narrows request listings. Zero values are ignored.
type QuoteRequestFilter struct {
	UserID      *uuid.UUID
	Status      model.QuoteRequestStatus
	ServiceArea string
}

type QuoteRequestRepository interface {
	Create(ctx context.Context, req *model.QuoteRequest) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.QuoteRequestStatus) error
	Update(ctx context.Context, req *model.QuoteRequest) error
	List(ctx context.Context, filter QuoteRequestFilter, page pagination.Params) ([]model.QuoteRequest, int64, error)
	CountByStatus(ctx context.Context) (map[model.QuoteRequestStatus]int64, error)
}

type quoteRequestRepository struct {
	db *gorm.DB
}

func NewQuoteRequestRepository(db *gorm.DB) QuoteRequestRepository {
	return &quoteRequestRepository{db: db}
}

func (r *quoteRequestRepository) Create(ctx context.Context, req *model.QuoteRequest) error {
	return GetDB(ctx, r.db).Create(req).Error
}

func (r *quoteRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error) {
	var req model.QuoteRequest
	if err := GetDB(ctx, r.db).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *quoteRequestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.QuoteRequest, error) {
	var req model.QuoteRequest
	if err := forUpdate(GetDB(ctx, r.db)).First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *quoteRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.QuoteRequestStatus) error {
	res := GetDB(ctx, r.db).Model(&model.QuoteRequest{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *quoteRequestRepository) Update(ctx context.Context, req *model.QuoteRequest) error {
	return GetDB(ctx, r.db).Save(req).Error
}

func (r *quoteRequestRepository) List(ctx context.Context, filter QuoteRequestFilter, page pagination.Params) ([]model.QuoteRequest, int64, error) {
	var reqs []model.QuoteRequest
	var total int64

	query := GetDB(ctx, r.db).Model(&model.QuoteRequest{})
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ServiceArea != "" {
		query = query.Where("service_area = ?", filter.ServiceArea)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Scopes(page.Scope).Order("created_at DESC").Find(&reqs).Error; err != nil {
		return nil, 0, err
	}
	return reqs, total, nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *quoteRequestRepository) CountByStatus(ctx context.Context) (map[model.QuoteRequestStatus]int64, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&model.QuoteRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[model.QuoteRequestStatus]int64, len(rows))
	for _, row := range rows {
		out[model.QuoteRequestStatus(row.Status)] = row.Count
	}
	return out, nil
}
