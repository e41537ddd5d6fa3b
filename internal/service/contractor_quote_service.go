package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultQuoteValidityDays = 30

// --- DTOs ---

type SubmitQuoteDTO struct {
	RequestID                uuid.UUID               `json:"request_id" validate:"required"`
	BasePrice                decimal.Decimal         `json:"base_price"`
	PricePerKwp              decimal.Decimal         `json:"price_per_kwp"`
	SystemSpecs              model.SystemSpecs       `json:"system_specs"`
	InstallationTimelineDays int                     `json:"installation_timeline_days" validate:"required,min=1,max=365"`
	ValidityDays             int                     `json:"validity_days" validate:"omitempty,min=1,max=180"`
	Notes                    string                  `json:"notes" validate:"max=2000"`
	LineItems                []pricing.LineItemInput `json:"line_items" validate:"omitempty,max=100,dive"`
}

type ReviewQuoteDTO struct {
	Decision        model.ReviewDecision `json:"decision" validate:"required,oneof=approve reject"`
	AdminNotes      string               `json:"admin_notes" validate:"max=2000"`
	RejectionReason string               `json:"rejection_reason" validate:"max=2000"`
}

type SelectQuoteDTO struct {
	Reason string `json:"reason" validate:"max=1000"`
}

type CompareQuotesDTO struct {
	QuoteIDs []uuid.UUID `json:"quote_ids" validate:"required,max=10"`
}

type PreviewPricingDTO struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	PricePerKwp   decimal.Decimal `json:"price_per_kwp"`
	SystemSizeKwp decimal.Decimal `json:"system_size_kwp"`
}

// ComparisonResult is the side-by-side summary returned to the requester.
type ComparisonResult struct {
	ComparisonID    uuid.UUID               `json:"comparison_id"`
	RequestID       uuid.UUID               `json:"request_id"`
	Quotes          []model.ContractorQuote `json:"quotes"`
	MinPrice        decimal.Decimal         `json:"min_price"`
	MaxPrice        decimal.Decimal         `json:"max_price"`
	AvgPrice        decimal.Decimal         `json:"avg_price"`
	PriceRange      decimal.Decimal         `json:"price_range"`
	CheapestQuoteID uuid.UUID               `json:"cheapest_quote_id"`
	FastestQuoteID  uuid.UUID               `json:"fastest_quote_id"`
}

// --- Interface ---

type ContractorQuoteService interface {
	Submit(ctx context.Context, contractorID uuid.UUID, dto SubmitQuoteDTO) (*model.ContractorQuote, error)
	ApproveOrReject(ctx context.Context, adminID, quoteID uuid.UUID, dto ReviewQuoteDTO) (*model.ContractorQuote, error)
	Select(ctx context.Context, userID, quoteID uuid.UUID, dto SelectQuoteDTO) (*model.ContractorQuote, error)
	Compare(ctx context.Context, userID, requestID uuid.UUID, dto CompareQuotesDTO) (*ComparisonResult, error)
	Get(ctx context.Context, actor Actor, quoteID uuid.UUID) (*model.ContractorQuote, error)
	ListForRequest(ctx context.Context, userID, requestID uuid.UUID) ([]model.ContractorQuote, error)
	ListForContractor(ctx context.Context, contractorID uuid.UUID, status model.AdminStatus, page pagination.Params) ([]model.ContractorQuote, int64, error)
	List(ctx context.Context, filter repository.QuoteFilter, page pagination.Params) ([]model.ContractorQuote, int64, error)
	Preview(ctx context.Context, dto PreviewPricingDTO) (pricing.FinancialBreakdown, error)
}

type contractorQuoteService struct {
	tx          repository.TransactionManager
	requests    repository.QuoteRequestRepository
	quotes      repository.ContractorQuoteRepository
	lineItems   repository.LineItemRepository
	comparisons repository.ComparisonRepository
	audits      repository.AuditRepository
	configs     PricingConfigService
	notifier    integration.Notifier
}

func NewContractorQuoteService(
	tx repository.TransactionManager,
	requests repository.QuoteRequestRepository,
	quotes repository.ContractorQuoteRepository,
	lineItems repository.LineItemRepository,
	comparisons repository.ComparisonRepository,
	audits repository.AuditRepository,
	configs PricingConfigService,
	notifier integration.Notifier,
) ContractorQuoteService {
	return &contractorQuoteService{
		tx:          tx,
		requests:    requests,
		quotes:      quotes,
		lineItems:   lineItems,
		comparisons: comparisons,
		audits:      audits,
		configs:     configs,
		notifier:    notifier,
	}
}

// --- Implementation ---

// Submit prices and stores a bid. The request row stays locked while the bid count is
// recomputed, so only one concurrent submission observes itself as the first.
func (s *contractorQuoteService) Submit(ctx context.Context, contractorID uuid.UUID, dto SubmitQuoteDTO) (*model.ContractorQuote, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	specs, err := json.Marshal(dto.SystemSpecs)
	if err != nil {
		return nil, apperror.BusinessRule("INVALID_SYSTEM_SPECS", "system specs could not be encoded")
	}
	validity := dto.ValidityDays
	if validity == 0 {
		validity = defaultQuoteValidityDays
	}

	var quote *model.ContractorQuote
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		req, err := s.requests.FindByIDForUpdate(txCtx, dto.RequestID)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}
		if !req.Status.AcceptsBids() {
			return apperror.Conflict("REQUEST_NOT_ACCEPTING_QUOTES", "quote request no longer accepts quotes, status "+string(req.Status))
		}

		exists, err := s.quotes.ExistsForContractor(txCtx, req.ID, contractorID)
		if err != nil {
			return fmt.Errorf("failed to check existing quote: %w", err)
		}
		if exists {
			return apperror.Conflict("DUPLICATE_QUOTE", "contractor already submitted a quote for this request")
		}

		cfg, err := s.configs.Current(txCtx)
		if err != nil {
			return err
		}
		breakdown, err := pricing.Calculate(dto.BasePrice, dto.PricePerKwp, req.SystemSizeKwp, cfg)
		if err != nil {
			return err
		}

		var items []model.QuotationLineItem
		lineTotal := decimal.Zero
		if len(dto.LineItems) > 0 {
			var totals pricing.LineItemTotals
			items, totals, err = pricing.AggregateLineItems(dto.LineItems, cfg)
			if err != nil {
				return err
			}
			if err := pricing.CheckLineItemsTotal(totals, dto.BasePrice); err != nil {
				return err
			}
			lineTotal = totals.Total
		}

		now := time.Now()
		quote = &model.ContractorQuote{
			RequestID:                req.ID,
			ContractorID:             contractorID,
			SystemSpecs:              specs,
			InstallationTimelineDays: dto.InstallationTimelineDays,
			ValidUntil:               now.AddDate(0, 0, validity),
			Notes:                    dto.Notes,
			AdminStatus:              model.AdminPending,
			LineItemsTotal:           lineTotal,
			PricingCalculateAt:       &now,
		}
		breakdown.Apply(quote)

		if err := s.quotes.Create(txCtx, quote); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperror.Conflict("DUPLICATE_QUOTE", "contractor already submitted a quote for this request")
			}
			return fmt.Errorf("failed to create quote: %w", err)
		}

		if len(items) > 0 {
			for i := range items {
				items[i].QuotationID = quote.ID
			}
			if err := s.lineItems.CreateBatch(txCtx, items); err != nil {
				return fmt.Errorf("failed to create line items: %w", err)
			}
			quote.LineItems = items
		}

		count, err := s.quotes.CountByRequest(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to count quotes: %w", err)
		}
		if count == 1 && req.Status != model.RequestQuotesReceived {
			if err := s.requests.UpdateStatus(txCtx, req.ID, model.RequestQuotesReceived); err != nil {
				return fmt.Errorf("failed to update request status: %w", err)
			}
			if err := writeAudit(txCtx, s.audits, auditEntry(nil, roleSystem, model.ActionRequestStatusChange, "quote_request", req.ID, map[string]interface{}{
				"from": req.Status,
				"to":   model.RequestQuotesReceived,
			})); err != nil {
				return err
			}
		}

		return writeAudit(txCtx, s.audits, auditEntry(&contractorID, RoleContractor, model.ActionSubmitQuote, "contractor_quote", quote.ID, map[string]interface{}{
			"request_id":       req.ID,
			"base_price":       quote.BasePrice,
			"total_user_price": quote.TotalUserPrice,
			"line_items":       len(items),
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	publish(ctx, s.notifier, integration.Event{
		Type:    integration.EventQuoteSubmitted,
		Payload: map[string]interface{}{"quote_id": quote.ID, "request_id": quote.RequestID},
	})
	return quote, nil
}

// ApproveOrReject records the admin verdict. Approval recomputes the breakdown under the
// current pricing configuration and stores it as the authoritative numbers.
func (s *contractorQuoteService) ApproveOrReject(ctx context.Context, adminID, quoteID uuid.UUID, dto ReviewQuoteDTO) (*model.ContractorQuote, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	status, ok := dto.Decision.AdminStatus()
	if !ok {
		return nil, apperror.BusinessRule("INVALID_DECISION", "decision must be approve or reject")
	}
	if status == model.AdminRejected && dto.RejectionReason == "" {
		return nil, apperror.BusinessRule("REJECTION_REASON_REQUIRED", "a rejection reason is required")
	}

	var (
		quote   *model.ContractorQuote
		ownerID uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		quote, err = s.quotes.FindByIDForUpdate(txCtx, quoteID)
		if err != nil {
			return translate(err, "QUOTE_NOT_FOUND", "quote not found")
		}
		if quote.AdminStatus != model.AdminPending {
			return apperror.Conflict("QUOTE_ALREADY_REVIEWED", "quote already "+string(quote.AdminStatus))
		}

		req, err := s.requests.FindByID(txCtx, quote.RequestID)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}
		ownerID = req.UserID

		details := map[string]interface{}{"decision": dto.Decision}
		now := time.Now()
		if status == model.AdminApproved {
			cfg, err := s.configs.Current(txCtx)
			if err != nil {
				return err
			}
			breakdown, err := pricing.Calculate(quote.BasePrice, quote.PricePerKwp, quote.SystemSizeKwp, cfg)
			if err != nil {
				return err
			}
			details["repriced"] = !breakdown.Matches(quote)
			breakdown.Apply(quote)
			quote.PricingCalculateAt = &now
			details["total_user_price"] = quote.TotalUserPrice
			details["platform_revenue"] = quote.PlatformRevenue
		} else {
			quote.RejectionReason = dto.RejectionReason
			details["rejection_reason"] = dto.RejectionReason
		}

		quote.AdminStatus = status
		quote.AdminNotes = dto.AdminNotes
		quote.ReviewedBy = &adminID
		quote.ReviewedAt = &now
		if err := s.quotes.Update(txCtx, quote); err != nil {
			return fmt.Errorf("failed to update quote: %w", err)
		}

		action := model.ActionApproveQuote
		if status == model.AdminRejected {
			action = model.ActionRejectQuote
		}
		return writeAudit(txCtx, s.audits, auditEntry(&adminID, RoleAdmin, action, "contractor_quote", quote.ID, details))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	recipients := []uuid.UUID{quote.ContractorID}
	if status == model.AdminApproved {
		recipients = append(recipients, ownerID)
	}
	publish(ctx, s.notifier, integration.Event{
		Type:       integration.EventQuoteReviewed,
		Recipients: recipients,
		Payload:    map[string]interface{}{"quote_id": quote.ID, "request_id": quote.RequestID, "admin_status": quote.AdminStatus},
	})
	return quote, nil
}

// Select marks one approved quote as the winner. Demoting siblings, promoting the target and
// closing the request commit together.
func (s *contractorQuoteService) Select(ctx context.Context, userID, quoteID uuid.UUID, dto SelectQuoteDTO) (*model.ContractorQuote, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}

	var quote *model.ContractorQuote
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.quotes.FindByID(txCtx, quoteID)
		if err != nil {
			return translate(err, "QUOTE_NOT_FOUND", "quote not found")
		}

		// request first, then quote: the same order every writer on a request uses
		req, err := s.requests.FindByIDForUpdate(txCtx, target.RequestID)
		if err != nil {
			return translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}
		if req.UserID != userID {
			return apperror.Forbidden("NOT_REQUEST_OWNER", "only the requester can select a quote")
		}
		if req.Status == model.RequestQuoteSelected {
			return apperror.BusinessRule("QUOTE_ALREADY_SELECTED", "a quote was already selected for this request")
		}
		if !model.CanTransition(req.Status, model.RequestQuoteSelected) {
			return apperror.Conflict("REQUEST_NOT_SELECTABLE", "cannot select a quote for a request in status "+string(req.Status))
		}

		quote, err = s.quotes.FindByIDForUpdate(txCtx, quoteID)
		if err != nil {
			return translate(err, "QUOTE_NOT_FOUND", "quote not found")
		}
		now := time.Now()
		if quote.AdminStatus != model.AdminApproved {
			return apperror.BusinessRule("QUOTE_NOT_APPROVED", "only approved quotes can be selected")
		}
		if quote.IsExpired(now) {
			return apperror.BusinessRule("QUOTE_EXPIRED", "quote validity expired on "+quote.ValidUntil.Format("2006-01-02"))
		}

		if err := s.quotes.ClearSelection(txCtx, req.ID, quote.ID); err != nil {
			return fmt.Errorf("failed to clear selection: %w", err)
		}
		quote.IsSelected = true
		quote.SelectedAt = &now
		quote.SelectionReason = dto.Reason
		if err := s.quotes.Update(txCtx, quote); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperror.BusinessRule("QUOTE_ALREADY_SELECTED", "a quote was already selected for this request")
			}
			return fmt.Errorf("failed to select quote: %w", err)
		}

		previous := req.Status
		req.Status = model.RequestQuoteSelected
		req.SelectedQuoteID = &quote.ID
		if err := s.requests.Update(txCtx, req); err != nil {
			return fmt.Errorf("failed to update request: %w", err)
		}

		return writeAudit(txCtx, s.audits, auditEntry(&userID, RoleUser, model.ActionSelectQuote, "contractor_quote", quote.ID, map[string]interface{}{
			"request_id": req.ID,
			"from":       previous,
			"reason":     dto.Reason,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	publish(ctx, s.notifier, integration.Event{
		Type:       integration.EventQuoteSelected,
		Recipients: []uuid.UUID{quote.ContractorID},
		Payload:    map[string]interface{}{"quote_id": quote.ID, "request_id": quote.RequestID},
	})
	return quote, nil
}

// Compare summarises approved quotes of one request and records the comparison.
func (s *contractorQuoteService) Compare(ctx context.Context, userID, requestID uuid.UUID, dto CompareQuotesDTO) (*ComparisonResult, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	ids := dedupeIDs(dto.QuoteIDs)
	if len(ids) < 2 {
		return nil, apperror.BusinessRule("COMPARISON_REQUIRES_TWO_QUOTES", "at least two distinct quotes are required")
	}

	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
	}
	if req.UserID != userID {
		return nil, apperror.Forbidden("NOT_REQUEST_OWNER", "only the requester can compare quotes")
	}

	quotes, err := s.quotes.ListByIDs(ctx, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(quotes) != len(ids) {
		return nil, apperror.NotFound("QUOTE_NOT_FOUND", "one or more quotes not found")
	}
	for _, q := range quotes {
		if q.RequestID != requestID {
			return nil, apperror.BusinessRule("QUOTE_NOT_IN_REQUEST", "quote "+q.ID.String()+" does not belong to this request")
		}
		if q.AdminStatus != model.AdminApproved {
			return nil, apperror.BusinessRule("QUOTE_NOT_APPROVED", "quote "+q.ID.String()+" is not approved")
		}
	}

	result := summarizeQuotes(quotes)
	result.RequestID = requestID

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		cmp := &model.QuoteComparison{
			UserID:          userID,
			RequestID:       requestID,
			QuoteIDs:        ids,
			MinPrice:        result.MinPrice,
			MaxPrice:        result.MaxPrice,
			AvgPrice:        result.AvgPrice,
			CheapestQuoteID: &result.CheapestQuoteID,
			FastestQuoteID:  &result.FastestQuoteID,
		}
		if err := s.comparisons.Create(txCtx, cmp); err != nil {
			return fmt.Errorf("failed to store comparison: %w", err)
		}
		result.ComparisonID = cmp.ID

		return writeAudit(txCtx, s.audits, auditEntry(&userID, RoleUser, model.ActionCompareQuotes, "quote_request", requestID, map[string]interface{}{
			"quote_ids": ids,
			"min_price": result.MinPrice,
			"max_price": result.MaxPrice,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return result, nil
}

func summarizeQuotes(quotes []model.ContractorQuote) *ComparisonResult {
	result := &ComparisonResult{Quotes: quotes}
	if len(quotes) == 0 {
		return result
	}

	sum := decimal.Zero
	cheapest, fastest := quotes[0], quotes[0]
	result.MinPrice = quotes[0].TotalUserPrice
	result.MaxPrice = quotes[0].TotalUserPrice
	for _, q := range quotes {
		sum = sum.Add(q.TotalUserPrice)
		if q.TotalUserPrice.LessThan(result.MinPrice) {
			result.MinPrice = q.TotalUserPrice
		}
		if q.TotalUserPrice.GreaterThan(result.MaxPrice) {
			result.MaxPrice = q.TotalUserPrice
		}
		if q.TotalUserPrice.LessThan(cheapest.TotalUserPrice) {
			cheapest = q
		}
		if q.InstallationTimelineDays < fastest.InstallationTimelineDays {
			fastest = q
		}
	}

	result.AvgPrice = pricing.Round(sum.Div(decimal.NewFromInt(int64(len(quotes)))))
	result.PriceRange = result.MaxPrice.Sub(result.MinPrice)
	result.CheapestQuoteID = cheapest.ID
	result.FastestQuoteID = fastest.ID
	return result
}

// Get enforces visibility: admins see everything, contractors their own bids, requesters the
// approved bids on their requests.
func (s *contractorQuoteService) Get(ctx context.Context, actor Actor, quoteID uuid.UUID) (*model.ContractorQuote, error) {
	quote, err := s.quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, translate(err, "QUOTE_NOT_FOUND", "quote not found")
	}

	switch actor.Role {
	case RoleAdmin:
		return quote, nil
	case RoleContractor:
		if quote.ContractorID == actor.ID {
			return quote, nil
		}
	case RoleUser:
		req, err := s.requests.FindByID(ctx, quote.RequestID)
		if err != nil {
			return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
		}
		if req.UserID == actor.ID && quote.AdminStatus == model.AdminApproved {
			return quote, nil
		}
	}
	return nil, apperror.Forbidden("QUOTE_ACCESS_DENIED", "quote is not visible to the caller")
}

func (s *contractorQuoteService) ListForRequest(ctx context.Context, userID, requestID uuid.UUID) ([]model.ContractorQuote, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
	}
	if req.UserID != userID {
		return nil, apperror.Forbidden("NOT_REQUEST_OWNER", "only the requester can list quotes of this request")
	}

	out, err := s.quotes.ListByRequest(ctx, requestID, true)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

func (s *contractorQuoteService) ListForContractor(ctx context.Context, contractorID uuid.UUID, status model.AdminStatus, page pagination.Params) ([]model.ContractorQuote, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, apperror.BusinessRule("INVALID_STATUS", "unknown admin status "+string(status))
	}
	return s.List(ctx, repository.QuoteFilter{ContractorID: &contractorID, AdminStatus: status}, page)
}

func (s *contractorQuoteService) List(ctx context.Context, filter repository.QuoteFilter, page pagination.Params) ([]model.ContractorQuote, int64, error) {
	out, total, err := s.quotes.List(ctx, filter, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return out, total, nil
}

// Preview prices a bid under the current configuration without storing anything.
func (s *contractorQuoteService) Preview(ctx context.Context, dto PreviewPricingDTO) (pricing.FinancialBreakdown, error) {
	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return pricing.FinancialBreakdown{}, err
	}
	return pricing.Calculate(dto.BasePrice, dto.PricePerKwp, dto.SystemSizeKwp, cfg)
}
