package repository

import (
	"context"

	"solarquote/internal/model"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	ReplaceForRequest(ctx context.Context, requestID uuid.UUID, assignments []model.ContractorAssignment) error
	FindByRequestAndContractor(ctx context.Context, requestID, contractorID uuid.UUID) (*model.ContractorAssignment, error)
	FindByRequestAndContractorForUpdate(ctx context.Context, requestID, contractorID uuid.UUID) (*model.ContractorAssignment, error)
	Update(ctx context.Context, assignment *model.ContractorAssignment) error
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.ContractorAssignment, error)
	ListByContractor(ctx context.Context, contractorID uuid.UUID, status model.AssignmentStatus, page pagination.Params) ([]model.ContractorAssignment, int64, error)
	Tally(ctx context.Context, requestID uuid.UUID) (model.AssignmentTally, error)
}

type assignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

// ReplaceForRequest deletes every assignment of the request and inserts the given set.
// Callers run it inside a transaction.
func (r *assignmentRepository) ReplaceForRequest(ctx context.Context, requestID uuid.UUID, assignments []model.ContractorAssignment) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("request_id = ?", requestID).Delete(&model.ContractorAssignment{}).Error; err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	return db.Create(&assignments).Error
}

func (r *assignmentRepository) FindByRequestAndContractor(ctx context.Context, requestID, contractorID uuid.UUID) (*model.ContractorAssignment, error) {
	var a model.ContractorAssignment
	if err := GetDB(ctx, r.db).
		First(&a, "request_id = ? AND contractor_id = ?", requestID, contractorID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) FindByRequestAndContractorForUpdate(ctx context.Context, requestID, contractorID uuid.UUID) (*model.ContractorAssignment, error) {
	var a model.ContractorAssignment
	if err := forUpdate(GetDB(ctx, r.db)).
		First(&a, "request_id = ? AND contractor_id = ?", requestID, contractorID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *model.ContractorAssignment) error {
	return GetDB(ctx, r.db).Save(assignment).Error
}

func (r *assignmentRepository) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]model.ContractorAssignment, error) {
	var out []model.ContractorAssignment
	err := GetDB(ctx, r.db).
		Where("request_id = ?", requestID).
		Order("assigned_at ASC").
		Find(&out).Error
	return out, err
}

func (r *assignmentRepository) ListByContractor(ctx context.Context, contractorID uuid.UUID, status model.AssignmentStatus, page pagination.Params) ([]model.ContractorAssignment, int64, error) {
	var out []model.ContractorAssignment
	var total int64

	query := GetDB(ctx, r.db).Model(&model.ContractorAssignment{}).Where("contractor_id = ?", contractorID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Scopes(page.Scope).Order("assigned_at DESC").Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Tally counts the current assignment statuses of a request in one query.
func (r *assignmentRepository) Tally(ctx context.Context, requestID uuid.UUID) (model.AssignmentTally, error) {
	var rows []statusCount
	if err := GetDB(ctx, r.db).Model(&model.ContractorAssignment{}).
		Select("status, COUNT(*) AS count").
		Where("request_id = ?", requestID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return model.AssignmentTally{}, err
	}

	var tally model.AssignmentTally
	for _, row := range rows {
		switch model.AssignmentStatus(row.Status) {
		case model.AssignmentAssigned:
			tally.Assigned = row.Count
		case model.AssignmentViewed:
			tally.Viewed = row.Count
		case model.AssignmentAccepted:
			tally.Accepted = row.Count
		case model.AssignmentRejected:
			tally.Rejected = row.Count
		}
	}
	return tally, nil
}
