package repository

import (
	"context"

	"solarquote/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PenaltyRuleRepository interface {
	Create(ctx context.Context, rule *model.PenaltyRule) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PenaltyRule, error)
	Update(ctx context.Context, rule *model.PenaltyRule) error
	List(ctx context.Context, penaltyType model.PenaltyType, activeOnly bool) ([]model.PenaltyRule, error)
	FindActive(ctx context.Context, penaltyType model.PenaltyType, severity model.Severity) (*model.PenaltyRule, error)
}

type penaltyRuleRepository struct {
	db *gorm.DB
}

func NewPenaltyRuleRepository(db *gorm.DB) PenaltyRuleRepository {
	return &penaltyRuleRepository{db: db}
}

func (r *penaltyRuleRepository) Create(ctx context.Context, rule *model.PenaltyRule) error {
	return GetDB(ctx, r.db).Create(rule).Error
}

func (r *penaltyRuleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PenaltyRule, error) {
	var rule model.PenaltyRule
	if err := GetDB(ctx, r.db).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *penaltyRuleRepository) Update(ctx context.Context, rule *model.PenaltyRule) error {
	return GetDB(ctx, r.db).Save(rule).Error
}

func (r *penaltyRuleRepository) List(ctx context.Context, penaltyType model.PenaltyType, activeOnly bool) ([]model.PenaltyRule, error) {
	var rules []model.PenaltyRule
	query := GetDB(ctx, r.db)
	if penaltyType != "" {
		query = query.Where("penalty_type = ?", penaltyType)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("penalty_type ASC, severity_level ASC, created_at ASC").Find(&rules).Error
	return rules, err
}

// FindActive prefers an active rule for (type, severity) and falls back to the oldest active
// rule of the type. Severity may be empty.
func (r *penaltyRuleRepository) FindActive(ctx context.Context, penaltyType model.PenaltyType, severity model.Severity) (*model.PenaltyRule, error) {
	db := GetDB(ctx, r.db)

	var rule model.PenaltyRule
	if severity != "" {
		err := db.Where("penalty_type = ? AND severity_level = ? AND is_active = ?", penaltyType, severity, true).
			Order("created_at ASC").
			First(&rule).Error
		if err == nil {
			return &rule, nil
		}
		if !IsNotFound(err) {
			return nil, err
		}
	}

	if err := db.Where("penalty_type = ? AND is_active = ?", penaltyType, true).
		Order("created_at ASC").
		First(&rule).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}
