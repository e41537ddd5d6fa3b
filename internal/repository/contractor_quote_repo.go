package repository

import (
	"context"

	"solarquote/internal/model"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuoteFilter narrows quote listings. Zero values are ignored.
type QuoteFilter struct {
	RequestID    *uuid.UUID
	ContractorID *uuid.UUID
	AdminStatus  model.AdminStatus
	SelectedOnly bool
}

func (f QuoteFilter) apply(db *gorm.DB) *gorm.DB {
	if f.RequestID != nil {
		db = db.Where("request_id = ?", *f.RequestID)
	}
	if f.ContractorID != nil {
		db = db.Where("contractor_id = ?", *f.ContractorID)
	}
	if f.AdminStatus != "" {
		db = db.Where("admin_status = ?", f.AdminStatus)
	}
	if f.SelectedOnly {
		db = db.Where("is_selected = ?", true)
	}
	return db
}

type ContractorQuoteRepository interface {
	Create(ctx context.Context, quote *model.ContractorQuote) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ContractorQuote, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ContractorQuote, error)
	ExistsForContractor(ctx context.Context, requestID, contractorID uuid.UUID) (bool, error)
	CountByRequest(ctx context.Context, requestID uuid.UUID) (int64, error)
	ListByRequest(ctx context.Context, requestID uuid.UUID, approvedOnly bool) ([]model.ContractorQuote, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ContractorQuote, error)
	Update(ctx context.Context, quote *model.ContractorQuote) error
	ClearSelection(ctx context.Context, requestID, keepID uuid.UUID) error
	ListSelectedApproved(ctx context.Context) ([]model.ContractorQuote, error)
	List(ctx context.Context, filter QuoteFilter, page pagination.Params) ([]model.ContractorQuote, int64, error)
	ListAll(ctx context.Context, filter QuoteFilter, max int) ([]model.ContractorQuote, error)
	CountByAdminStatus(ctx context.Context) (map[model.AdminStatus]int64, error)
	SumSelectedPlatformRevenue(ctx context.Context) (decimal.Decimal, error)
}

type contractorQuoteRepository struct {
	db *gorm.DB
}

func NewContractorQuoteRepository(db *gorm.DB) ContractorQuoteRepository {
	return &contractorQuoteRepository{db: db}
}

// Create inserts the quote row only. Line items go through LineItemRepository.
func (r *contractorQuoteRepository) Create(ctx context.Context, quote *model.ContractorQuote) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Create(quote).Error
}

func (r *contractorQuoteRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ContractorQuote, error) {
	var q model.ContractorQuote
	if err := GetDB(ctx, r.db).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *contractorQuoteRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.ContractorQuote, error) {
	var q model.ContractorQuote
	if err := forUpdate(GetDB(ctx, r.db)).First(&q, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *contractorQuoteRepository) ExistsForContractor(ctx context.Context, requestID, contractorID uuid.UUID) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.ContractorQuote{}).
		Where("request_id = ? AND contractor_id = ?", requestID, contractorID).
		Count(&count).Error
	return count > 0, err
}

func (r *contractorQuoteRepository) CountByRequest(ctx context.Context, requestID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).Model(&model.ContractorQuote{}).
		Where("request_id = ?", requestID).
		Count(&count).Error
	return count, err
}

func (r *contractorQuoteRepository) ListByRequest(ctx context.Context, requestID uuid.UUID, approvedOnly bool) ([]model.ContractorQuote, error) {
	var out []model.ContractorQuote
	query := GetDB(ctx, r.db).Where("request_id = ?", requestID)
	if approvedOnly {
		query = query.Where("admin_status = ?", model.AdminApproved)
	}
	err := query.Order("total_user_price ASC").Find(&out).Error
	return out, err
}

func (r *contractorQuoteRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.ContractorQuote, error) {
	var out []model.ContractorQuote
	if len(ids) == 0 {
		return out, nil
	}
	err := GetDB(ctx, r.db).Where("id IN ?", ids).Find(&out).Error
	return out, err
}

func (r *contractorQuoteRepository) Update(ctx context.Context, quote *model.ContractorQuote) error {
	return GetDB(ctx, r.db).Omit(clause.Associations).Save(quote).Error
}

// ClearSelection demotes every selected sibling of keepID within the request.
func (r *contractorQuoteRepository) ClearSelection(ctx context.Context, requestID, keepID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.ContractorQuote{}).
		Where("request_id = ? AND id <> ? AND is_selected = ?", requestID, keepID, true).
		Updates(map[string]interface{}{"is_selected": false, "selected_at": nil}).Error
}

// ListSelectedApproved returns the quotes an SLA scan has to inspect.
func (r *contractorQuoteRepository) ListSelectedApproved(ctx context.Context) ([]model.ContractorQuote, error) {
	var out []model.ContractorQuote
	err := GetDB(ctx, r.db).
		Where("admin_status = ? AND is_selected = ?", model.AdminApproved, true).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *contractorQuoteRepository) List(ctx context.Context, filter QuoteFilter, page pagination.Params) ([]model.ContractorQuote, int64, error) {
	var out []model.ContractorQuote
	var total int64

	query := filter.apply(GetDB(ctx, r.db).Model(&model.ContractorQuote{}))
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Scopes(page.Scope).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *contractorQuoteRepository) ListAll(ctx context.Context, filter QuoteFilter, max int) ([]model.ContractorQuote, error) {
	var out []model.ContractorQuote
	query := filter.apply(GetDB(ctx, r.db).Model(&model.ContractorQuote{}))
	if max > 0 {
		query = query.Limit(max)
	}
	err := query.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *contractorQuoteRepository) CountByAdminStatus(ctx context.Context) (map[model.AdminStatus]int64, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&model.ContractorQuote{}).
		Select("admin_status AS status, COUNT(*) AS count").
		Group("admin_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[model.AdminStatus]int64, len(rows))
	for _, row := range rows {
		out[model.AdminStatus(row.Status)] = row.Count
	}
	return out, nil
}

func (r *contractorQuoteRepository) SumSelectedPlatformRevenue(ctx context.Context) (decimal.Decimal, error) {
	var agg struct {
		Total decimal.Decimal
	}
	err := GetDB(ctx, r.db).Model(&model.ContractorQuote{}).
		Select("COALESCE(SUM(platform_revenue), 0) AS total").
		Where("is_selected = ?", true).
		Scan(&agg).Error
	return agg.Total, err
}
