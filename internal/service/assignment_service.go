package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
)

// --- DTOs ---

type AssignContractorsDTO struct {
	ContractorIDs []uuid.UUID `json:"contractor_ids" validate:"required,min=1,max=20"`
}

type RespondAssignmentDTO struct {
	Response model.AssignmentResponse `json:"response" validate:"required,oneof=accept reject"`
	Notes    string                   `json:"notes" validate:"max=2000"`
}

// --- Interface ---

type AssignmentService interface {
	AssignContractors(ctx context.Context, adminID, requestID uuid.UUID, dto AssignContractorsDTO) ([]model.ContractorAssignment, error)
	InviteContractors(ctx context.Context, userID, requestID uuid.UUID, dto AssignContractorsDTO) ([]model.ContractorAssignment, error)
	RespondToAssignment(ctx context.Context, contractorID, requestID uuid.UUID, dto RespondAssignmentDTO) (*model.ContractorAssignment, error)
	MarkViewed(ctx context.Context, contractorID, requestID uuid.UUID) (*model.ContractorAssignment, error)
	ListForContractor(ctx context.Context, contractorID uuid.UUID, status model.AssignmentStatus, page pagination.Params) ([]model.ContractorAssignment, int64, error)
	ListForRequest(ctx context.Context, requestID uuid.UUID) ([]model.ContractorAssignment, error)
}

type assignmentService struct {
	tx          repository.TransactionManager
	requests    repository.QuoteRequestRepository
	assignments repository.AssignmentRepository
	audits      repository.AuditRepository
	notifier    integration.Notifier
}

func NewAssignmentService(
	tx repository.TransactionManager,
	requests repository.QuoteRequestRepository,
	assignments repository.AssignmentRepository,
	audits repository.AuditRepository,
	notifier integration.Notifier,
) AssignmentService {
	return &assignmentService{tx: tx, requests: requests, assignments: assignments, audits: audits, notifier: notifier}
}

// --- Implementation ---

// AssignContractors replaces every assignment of the request and moves it in progress.
// A request that already received quotes keeps that status.
func (s *assignmentService) AssignContractors(ctx context.Context, adminID, requestID uuid.UUID, dto AssignContractorsDTO) ([]model.ContractorAssignment, error) {
	return s.replace(ctx, Actor{ID: adminID, Role: RoleAdmin}, requestID, dto, model.ActionAssignContractors,
		func(req *model.QuoteRequest) (model.QuoteRequestStatus, error) {
			if !req.Status.AcceptsAssignments() {
				return "", apperror.Conflict("REQUEST_NOT_ASSIGNABLE", "contractors cannot be assigned to a request in status "+string(req.Status))
			}
			if req.Status == model.RequestQuotesReceived {
				return req.Status, nil
			}
			return model.RequestInProgress, nil
		})
}

// InviteContractors is the requester-side assignment. Only open requests can be invited to.
func (s *assignmentService) InviteContractors(ctx context.Context, userID, requestID uuid.UUID, dto AssignContractorsDTO) ([]model.ContractorAssignment, error) {
	return s.replace(ctx, Actor{ID: userID, Role: RoleUser}, requestID, dto, model.ActionInviteContractors,
		func(req *model.QuoteRequest) (model.QuoteRequestStatus, error) {
			if req.UserID != userID {
				return "", apperror.Forbidden("NOT_REQUEST_OWNER", "only the requester can invite contractors")
			}
			switch req.Status {
			case model.RequestPending, model.RequestContractorsSelected:
				return model.RequestContractorsSelected, nil
			case model.RequestInProgress, model.RequestQuotesReceived, model.RequestQuoteSelected,
				model.RequestRejected, model.RequestCancelled:
			}
			return "", apperror.Conflict("REQUEST_NOT_INVITABLE", "contractors cannot be invited to a request in status "+string(req.Status))
		})
}

func (s *assignmentService) replace(
	ctx context.Context,
	actor Actor,
	requestID uuid.UUID,
	dto AssignContractorsDTO,
	action string,
	nextStatus func(req *model.QuoteRequest) (model.QuoteRequestStatus, error),
) ([]model.ContractorAssignment, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	contractorIDs := dedupeIDs(dto.ContractorIDs)
	if len(contractorIDs) == 0 {
		return nil, apperror.BusinessRule("NO_CONTRACTORS", "at least one contractor is required")
	}

	var assignments []model.ContractorAssignment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.FindByIDForUpdate(txCtx, requestID)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}

		next, err := nextStatus(req)
		if err != nil {
			return err
		}

		now := time.Now()
		assignments = make([]model.ContractorAssignment, 0, len(contractorIDs))
		for _, contractorID := range contractorIDs {
			assignments = append(assignments, model.ContractorAssignment{
				RequestID:    requestID,
				ContractorID: contractorID,
				Status:       model.AssignmentAssigned,
				AssignedBy:   &actor.ID,
				AssignedAt:   now,
			})
		}
		if err := s.assignments.ReplaceForRequest(txCtx, requestID, assignments); err != nil {
			return fmt.Errorf("failed to replace assignments: %w", err)
		}

		if next != req.Status {
			if !model.CanTransition(req.Status, next) {
				return apperror.Conflict("INVALID_STATUS_TRANSITION", fmt.Sprintf("cannot move request from %s to %s", req.Status, next))
			}
			if err := s.requests.UpdateStatus(txCtx, requestID, next); err != nil {
				return fmt.Errorf("failed to update request status: %w", err)
			}
		}

		return writeAudit(txCtx, s.audits, auditEntry(&actor.ID, actor.Role, action, "quote_request", requestID, map[string]interface{}{
			"contractor_ids": contractorIDs,
			"from":           req.Status,
			"to":             next,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyContractorsAssigned(ctx, requestID, contractorIDs); err != nil {
			log.Printf("[NOTIFY] contractors assigned to %s not notified: %v", requestID, err)
		}
	}
	return assignments, nil
}

// RespondToAssignment records a contractor's answer and recomputes the request status from the
// full assignment tally. The request row lock serializes concurrent responses.
func (s *assignmentService) RespondToAssignment(ctx context.Context, contractorID, requestID uuid.UUID, dto RespondAssignmentDTO) (*model.ContractorAssignment, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	newStatus, ok := dto.Response.Status()
	if !ok {
		return nil, apperror.BusinessRule("INVALID_RESPONSE", "response must be accept or reject")
	}

	var assignment *model.ContractorAssignment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.FindByIDForUpdate(txCtx, requestID)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}

		assignment, err = s.assignments.FindByRequestAndContractorForUpdate(txCtx, requestID, contractorID)
		if err != nil {
			return translate(err, "ASSIGNMENT_NOT_FOUND", "contractor is not assigned to this request")
		}
		if !assignment.Status.AwaitingResponse() {
			return apperror.BusinessRule("ALREADY_RESPONDED", "assignment already "+string(assignment.Status))
		}

		now := time.Now()
		assignment.Status = newStatus
		assignment.RespondedAt = &now
		assignment.ResponseNotes = dto.Notes
		if assignment.ViewedAt == nil {
			assignment.ViewedAt = &now
		}
		if err := s.assignments.Update(txCtx, assignment); err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}

		if err := writeAudit(txCtx, s.audits, auditEntry(&contractorID, RoleContractor, model.ActionRespondAssignment, "contractor_assignment", assignment.ID, map[string]interface{}{
			"request_id": requestID,
			"response":   dto.Response,
		})); err != nil {
			return err
		}

		return s.recomputeRequestStatus(txCtx, req)
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return assignment, nil
}

func (s *assignmentService) recomputeRequestStatus(txCtx context.Context, req *model.QuoteRequest) error {
	tally, err := s.assignments.Tally(txCtx, req.ID)
	if err != nil {
		return fmt.Errorf("failed to tally assignments: %w", err)
	}

	next, changed := model.DeriveStatusFromAssignments(req.Status, tally)
	if !changed {
		return nil
	}
	if err := s.requests.UpdateStatus(txCtx, req.ID, next); err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	return writeAudit(txCtx, s.audits, auditEntry(nil, roleSystem, model.ActionRequestStatusChange, "quote_request", req.ID, map[string]interface{}{
		"from":  req.Status,
		"to":    next,
		"tally": tally,
	}))
}

// MarkViewed moves an assignment from assigned to viewed. Other states are left untouched.
func (s *assignmentService) MarkViewed(ctx context.Context, contractorID, requestID uuid.UUID) (*model.ContractorAssignment, error) {
	var assignment *model.ContractorAssignment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		assignment, err = s.assignments.FindByRequestAndContractorForUpdate(txCtx, requestID, contractorID)
		if err != nil {
			return translate(err, "ASSIGNMENT_NOT_FOUND", "contractor is not assigned to this request")
		}
		if assignment.Status != model.AssignmentAssigned {
			return nil
		}
		now := time.Now()
		assignment.Status = model.AssignmentViewed
		assignment.ViewedAt = &now
		return s.assignments.Update(txCtx, assignment)
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return assignment, nil
}

func (s *assignmentService) ListForContractor(ctx context.Context, contractorID uuid.UUID, status model.AssignmentStatus, page pagination.Params) ([]model.ContractorAssignment, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, apperror.BusinessRule("INVALID_STATUS", "unknown assignment status "+string(status))
	}
	out, total, err := s.assignments.ListByContractor(ctx, contractorID, status, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return out, total, nil
}

func (s *assignmentService) ListForRequest(ctx context.Context, requestID uuid.UUID) ([]model.ContractorAssignment, error) {
	out, err := s.assignments.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}
