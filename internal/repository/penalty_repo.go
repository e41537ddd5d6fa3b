package repository

import (
	"context"
	"time"

	"solarquote/internal/model"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PenaltyFilter narrows penalty listings. Zero values are ignored.
type PenaltyFilter struct {
	ContractorID *uuid.UUID
	QuoteID      *uuid.UUID
	Status       model.PenaltyStatus
	PenaltyType  model.PenaltyType
}

type PenaltyRepository interface {
	Create(ctx context.Context, penalty *model.PenaltyInstance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PenaltyInstance, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.PenaltyInstance, error)
	Update(ctx context.Context, penalty *model.PenaltyInstance) error
	ExistsActive(ctx context.Context, contractorID, quoteID uuid.UUID, penaltyType model.PenaltyType) (bool, error)
	ActiveQuoteIDs(ctx context.Context, penaltyType model.PenaltyType, quoteIDs []uuid.UUID) (map[uuid.UUID]bool, error)
	ListByStatus(ctx context.Context, status model.PenaltyStatus, limit int) ([]model.PenaltyInstance, error)
	List(ctx context.Context, filter PenaltyFilter, page pagination.Params) ([]model.PenaltyInstance, int64, error)
	ListCreatedSince(ctx context.Context, since time.Time) ([]model.PenaltyInstance, error)
	CountByStatus(ctx context.Context) (map[model.PenaltyStatus]int64, error)
}

type penaltyRepository struct {
	db *gorm.DB
}

func NewPenaltyRepository(db *gorm.DB) PenaltyRepository {
	return &penaltyRepository{db: db}
}

func (r *penaltyRepository) Create(ctx context.Context, penalty *model.PenaltyInstance) error {
	return GetDB(ctx, r.db).Omit("Rule").Create(penalty).Error
}

func (r *penaltyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PenaltyInstance, error) {
	var p model.PenaltyInstance
	if err := GetDB(ctx, r.db).Preload("Rule").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *penaltyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.PenaltyInstance, error) {
	var p model.PenaltyInstance
	if err := forUpdate(GetDB(ctx, r.db)).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *penaltyRepository) Update(ctx context.Context, penalty *model.PenaltyInstance) error {
	return GetDB(ctx, r.db).Omit("Rule").Save(penalty).Error
}

func (r *penaltyRepository) ExistsActive(ctx context.Context, contractorID, quoteID uuid.UUID, penaltyType model.PenaltyType) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.PenaltyInstance{}).
		Where("contractor_id = ? AND quote_id = ? AND penalty_type = ?", contractorID, quoteID, penaltyType).
		Where("status NOT IN ?", model.InactivePenaltyStatuses).
		Count(&count).Error
	return count > 0, err
}

// ActiveQuoteIDs returns the subset of quoteIDs already carrying an active penalty of the type.
func (r *penaltyRepository) ActiveQuoteIDs(ctx context.Context, penaltyType model.PenaltyType, quoteIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	if len(quoteIDs) == 0 {
		return out, nil
	}

	var ids []uuid.UUID
	if err := GetDB(ctx, r.db).Model(&model.PenaltyInstance{}).
		Where("penalty_type = ? AND quote_id IN ?", penaltyType, quoteIDs).
		Where("status NOT IN ?", model.InactivePenaltyStatuses).
		Distinct().
		Pluck("quote_id", &ids).Error; err != nil {
		return nil, err
	}
	for _, id := range ids {
		out[id] = true
	}
	return out, nil
}

func (r *penaltyRepository) ListByStatus(ctx context.Context, status model.PenaltyStatus, limit int) ([]model.PenaltyInstance, error) {
	var out []model.PenaltyInstance
	query := GetDB(ctx, r.db).Where("status = ?", status).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&out).Error
	return out, err
}

func (r *penaltyRepository) List(ctx context.Context, filter PenaltyFilter, page pagination.Params) ([]model.PenaltyInstance, int64, error) {
	var out []model.PenaltyInstance
	var total int64

	query := GetDB(ctx, r.db).Model(&model.PenaltyInstance{})
	if filter.ContractorID != nil {
		query = query.Where("contractor_id = ?", *filter.ContractorID)
	}
	if filter.QuoteID != nil {
		query = query.Where("quote_id = ?", *filter.QuoteID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PenaltyType != "" {
		query = query.Where("penalty_type = ?", filter.PenaltyType)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Scopes(page.Scope).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *penaltyRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]model.PenaltyInstance, error) {
	var out []model.PenaltyInstance
	err := GetDB(ctx, r.db).Where("created_at >= ?", since).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *penaltyRepository) CountByStatus(ctx context.Context) (map[model.PenaltyStatus]int64, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&model.PenaltyInstance{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[model.PenaltyStatus]int64, len(rows))
	for _, row := range rows {
		out[model.PenaltyStatus(row.Status)] = row.Count
	}
	return out, nil
}
