package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

type CreateQuoteRequestDTO struct {
	SystemSizeKwp      decimal.Decimal `json:"system_size_kwp"`
	LocationAddress    string          `json:"location_address" validate:"required,max=500"`
	ServiceArea        string          `json:"service_area" validate:"max=100"`
	PropertyDetails    json.RawMessage `json:"property_details"`
	ConsumptionProfile json.RawMessage `json:"consumption_profile"`
	Notes              string          `json:"notes" validate:"max=2000"`
}

type CancelQuoteRequestDTO struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// --- Interface ---

type QuoteRequestService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateQuoteRequestDTO) (*model.QuoteRequest, error)
	Get(ctx context.Context, actor Actor, id uuid.UUID) (*model.QuoteRequest, error)
	List(ctx context.Context, filter repository.QuoteRequestFilter, page pagination.Params) ([]model.QuoteRequest, int64, error)
	ListMine(ctx context.Context, userID uuid.UUID, status model.QuoteRequestStatus, page pagination.Params) ([]model.QuoteRequest, int64, error)
	Cancel(ctx context.Context, userID, id uuid.UUID, dto CancelQuoteRequestDTO) (*model.QuoteRequest, error)
}

type quoteRequestService struct {
	tx          repository.TransactionManager
	requests    repository.QuoteRequestRepository
	assignments repository.AssignmentRepository
	audits      repository.AuditRepository
	configs     PricingConfigService
}

func NewQuoteRequestService(
	tx repository.TransactionManager,
	requests repository.QuoteRequestRepository,
	assignments repository.AssignmentRepository,
	audits repository.AuditRepository,
	configs PricingConfigService,
) QuoteRequestService {
	return &quoteRequestService{tx: tx, requests: requests, assignments: assignments, audits: audits, configs: configs}
}

// --- Implementation ---

func (s *quoteRequestService) Create(ctx context.Context, userID uuid.UUID, dto CreateQuoteRequestDTO) (*model.QuoteRequest, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}

	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return nil, err
	}
	if err := pricing.ValidateSystemSize(dto.SystemSizeKwp, cfg); err != nil {
		return nil, err
	}

	req := &model.QuoteRequest{
		UserID:             userID,
		SystemSizeKwp:      dto.SystemSizeKwp,
		LocationAddress:    strings.TrimSpace(dto.LocationAddress),
		ServiceArea:        strings.TrimSpace(dto.ServiceArea),
		PropertyDetails:    jsonOrEmpty(dto.PropertyDetails),
		ConsumptionProfile: jsonOrEmpty(dto.ConsumptionProfile),
		Status:             model.RequestPending,
		Notes:              dto.Notes,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requests.Create(txCtx, req); err != nil {
			return fmt.Errorf("failed to create quote request: %w", err)
		}
		return writeAudit(txCtx, s.audits, auditEntry(&userID, RoleUser, model.ActionCreateQuoteRequest, "quote_request", req.ID, map[string]interface{}{
			"system_size_kwp": req.SystemSizeKwp.String(),
			"service_area":    req.ServiceArea,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return req, nil
}

// Get is open to the owner, admins, and contractors assigned to the request.
func (s *quoteRequestService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*model.QuoteRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
	}

	switch actor.Role {
	case RoleAdmin:
		return req, nil
	case RoleUser:
		if req.UserID == actor.ID {
			return req, nil
		}
	case RoleContractor:
		_, err := s.assignments.FindByRequestAndContractor(ctx, id, actor.ID)
		if err == nil {
			return req, nil
		}
		if !repository.IsNotFound(err) {
			return nil, apperror.Internal(err)
		}
	}
	return nil, apperror.Forbidden("REQUEST_ACCESS_DENIED", "quote request belongs to another user")
}

func (s *quoteRequestService) List(ctx context.Context, filter repository.QuoteRequestFilter, page pagination.Params) ([]model.QuoteRequest, int64, error) {
	reqs, total, err := s.requests.List(ctx, filter, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return reqs, total, nil
}

func (s *quoteRequestService) ListMine(ctx context.Context, userID uuid.UUID, status model.QuoteRequestStatus, page pagination.Params) ([]model.QuoteRequest, int64, error) {
	return s.List(ctx, repository.QuoteRequestFilter{UserID: &userID, Status: status}, page)
}

func (s *quoteRequestService) Cancel(ctx context.Context, userID, id uuid.UUID, dto CancelQuoteRequestDTO) (*model.QuoteRequest, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}

	var req *model.QuoteRequest
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		req, err = s.requests.FindByIDForUpdate(txCtx, id)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}
		if req.UserID != userID {
			return apperror.Forbidden("NOT_REQUEST_OWNER", "only the requester can cancel a quote request")
		}
		if req.Status.IsTerminal() || !model.CanTransition(req.Status, model.RequestCancelled) {
			return apperror.Conflict("REQUEST_NOT_CANCELLABLE", "quote request in status "+string(req.Status)+" cannot be cancelled")
		}

		from := req.Status
		now := time.Now()
		req.Status = model.RequestCancelled
		req.CancellationReason = dto.Reason
		req.CancelledAt = &now
		if err := s.requests.Update(txCtx, req); err != nil {
			return fmt.Errorf("failed to cancel quote request: %w", err)
		}

		return writeAudit(txCtx, s.audits, auditEntry(&userID, RoleUser, model.ActionCancelQuoteRequest, "quote_request", req.ID, map[string]interface{}{
			"from":   from,
			"reason": dto.Reason,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return req, nil
}

func jsonOrEmpty(raw json.RawMessage) []byte {
	if len(raw) == 0 || string(raw) == "null" {
		return []byte("{}")
	}
	return raw
}
