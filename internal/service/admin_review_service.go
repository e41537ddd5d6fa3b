package service

import (
	"context"
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

const penaltyHistoryLimit = 20

// --- DTOs ---

// RequestSummary is the slice of a quote request shown next to a quote under review.
type RequestSummary struct {
	ID              uuid.UUID                `json:"id"`
	UserID          uuid.UUID                `json:"user_id"`
	SystemSizeKwp   decimal.Decimal          `json:"system_size_kwp"`
	ServiceArea     string                   `json:"service_area"`
	LocationAddress string                   `json:"location_address"`
	Status          model.QuoteRequestStatus `json:"status"`
}

type ReviewQueueItem struct {
	Quote      model.ContractorQuote      `json:"quote"`
	Contractor integration.ContractorInfo `json:"contractor"`
	Request    *RequestSummary            `json:"request"`
}

// SiblingStats describes the other bids on the same request.
type SiblingStats struct {
	Count    int             `json:"count"`
	Approved int             `json:"approved"`
	MinPrice decimal.Decimal `json:"min_price"`
	MaxPrice decimal.Decimal `json:"max_price"`
	AvgPrice decimal.Decimal `json:"avg_price"`
}

type QuoteReviewDetail struct {
	Quote          *model.ContractorQuote      `json:"quote"`
	Request        *model.QuoteRequest         `json:"request"`
	Contractor     integration.ContractorInfo  `json:"contractor"`
	Preview        *pricing.FinancialBreakdown `json:"pricing_preview,omitempty"`
	PreviewError   string                      `json:"pricing_preview_error,omitempty"`
	PricingChanged bool                        `json:"pricing_changed"`
	Siblings       SiblingStats                `json:"siblings"`
	PenaltyHistory []model.PenaltyInstance     `json:"penalty_history"`
}

type Dashboard struct {
	RequestsByStatus    map[model.QuoteRequestStatus]int64 `json:"requests_by_status"`
	QuotesByAdminStatus map[model.AdminStatus]int64        `json:"quotes_by_admin_status"`
	PenaltiesByStatus   map[model.PenaltyStatus]int64      `json:"penalties_by_status"`
	PlatformRevenue     decimal.Decimal                    `json:"platform_revenue"`
	GeneratedAt         time.Time                          `json:"generated_at"`
}

type RequestDetail struct {
	Request     *model.QuoteRequest          `json:"request"`
	Requester   integration.UserInfo         `json:"requester"`
	Assignments []model.ContractorAssignment `json:"assignments"`
	Quotes      []model.ContractorQuote      `json:"quotes"`
}

// --- Interface ---

type AdminReviewService interface {
	ReviewQueue(ctx context.Context, status model.AdminStatus, page pagination.Params) ([]ReviewQueueItem, int64, error)
	QuoteDetail(ctx context.Context, quoteID uuid.UUID) (*QuoteReviewDetail, error)
	Review(ctx context.Context, adminID, quoteID uuid.UUID, dto ReviewQuoteDTO) (*model.ContractorQuote, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	RequestDetail(ctx context.Context, requestID uuid.UUID) (*RequestDetail, error)
	ExportQuotes(ctx context.Context, filter repository.QuoteFilter) ([]byte, error)
}

type adminReviewService struct {
	requests    repository.QuoteRequestRepository
	assignments repository.AssignmentRepository
	quotes      repository.ContractorQuoteRepository
	penalties   repository.PenaltyRepository
	quoteSvc    ContractorQuoteService
	configs     PricingConfigService
	identity    integration.IdentityClient
}

func NewAdminReviewService(
	requests repository.QuoteRequestRepository,
	assignments repository.AssignmentRepository,
	quotes repository.ContractorQuoteRepository,
	penalties repository.PenaltyRepository,
	quoteSvc ContractorQuoteService,
	configs PricingConfigService,
	identity integration.IdentityClient,
) AdminReviewService {
	return &adminReviewService{
		requests:    requests,
		assignments: assignments,
		quotes:      quotes,
		penalties:   penalties,
		quoteSvc:    quoteSvc,
		configs:     configs,
		identity:    identity,
	}
}

// --- Implementation ---

// ReviewQueue lists quotes by admin status, pending when empty, with contractor identity and a
// request summary attached. Each contractor and request is looked up once per page.
func (s *adminReviewService) ReviewQueue(ctx context.Context, status model.AdminStatus, page pagination.Params) ([]ReviewQueueItem, int64, error) {
	if status == "" {
		status = model.AdminPending
	}
	if !status.Valid() {
		return nil, 0, apperror.BusinessRule("INVALID_STATUS", "unknown admin status "+string(status))
	}

	quotes, total, err := s.quotes.List(ctx, repository.QuoteFilter{AdminStatus: status}, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	contractors := make(map[uuid.UUID]integration.ContractorInfo)
	requests := make(map[uuid.UUID]*RequestSummary)
	items := make([]ReviewQueueItem, 0, len(quotes))
	for _, q := range quotes {
		info, ok := contractors[q.ContractorID]
		if !ok {
			info = integration.ResolveContractor(ctx, s.identity, q.ContractorID)
			contractors[q.ContractorID] = info
		}

		summary, ok := requests[q.RequestID]
		if !ok {
			if req, err := s.requests.FindByID(ctx, q.RequestID); err == nil {
				summary = summarizeRequest(req)
			}
			requests[q.RequestID] = summary
		}

		items = append(items, ReviewQueueItem{Quote: q, Contractor: info, Request: summary})
	}
	return items, total, nil
}

func summarizeRequest(req *model.QuoteRequest) *RequestSummary {
	return &RequestSummary{
		ID:              req.ID,
		UserID:          req.UserID,
		SystemSizeKwp:   req.SystemSizeKwp,
		ServiceArea:     req.ServiceArea,
		LocationAddress: req.LocationAddress,
		Status:          req.Status,
	}
}

// QuoteDetail assembles everything an admin needs to decide on a quote, including a fresh
// pricing preview under the current configuration.
func (s *adminReviewService) QuoteDetail(ctx context.Context, quoteID uuid.UUID) (*QuoteReviewDetail, error) {
	quote, err := s.quotes.FindByID(ctx, quoteID)
	if err != nil {
		return nil, translate(err, "QUOTE_NOT_FOUND", "quote not found")
	}
	req, err := s.requests.FindByID(ctx, quote.RequestID)
	if err != nil {
		return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
	}

	detail := &QuoteReviewDetail{
		Quote:          quote,
		Request:        req,
		Contractor:     integration.ResolveContractor(ctx, s.identity, quote.ContractorID),
		PenaltyHistory: []model.PenaltyInstance{},
	}

	cfg, err := s.configs.Current(ctx)
	if err != nil {
		return nil, err
	}
	preview, err := pricing.Calculate(quote.BasePrice, quote.PricePerKwp, quote.SystemSizeKwp, cfg)
	if err != nil {
		// stored prices may violate a tightened config
		detail.PreviewError = err.Error()
	} else {
		detail.Preview = &preview
		detail.PricingChanged = !preview.Matches(quote)
	}

	siblings, err := s.quotes.ListByRequest(ctx, quote.RequestID, false)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	detail.Siblings = siblingStats(siblings, quote.ID)

	history, _, err := s.penalties.List(ctx, repository.PenaltyFilter{ContractorID: &quote.ContractorID}, pagination.New(1, penaltyHistoryLimit))
	if err != nil {
		return nil, apperror.Internal(err)
	}
	detail.PenaltyHistory = history
	return detail, nil
}

func siblingStats(quotes []model.ContractorQuote, excludeID uuid.UUID) SiblingStats {
	stats := SiblingStats{MinPrice: decimal.Zero, MaxPrice: decimal.Zero, AvgPrice: decimal.Zero}
	sum := decimal.Zero
	for _, q := range quotes {
		if q.ID == excludeID {
			continue
		}
		if stats.Count == 0 || q.TotalUserPrice.LessThan(stats.MinPrice) {
			stats.MinPrice = q.TotalUserPrice
		}
		if stats.Count == 0 || q.TotalUserPrice.GreaterThan(stats.MaxPrice) {
			stats.MaxPrice = q.TotalUserPrice
		}
		stats.Count++
		if q.AdminStatus == model.AdminApproved {
			stats.Approved++
		}
		sum = sum.Add(q.TotalUserPrice)
	}
	if stats.Count > 0 {
		stats.AvgPrice = pricing.Round(sum.Div(decimal.NewFromInt(int64(stats.Count))))
	}
	return stats
}

func (s *adminReviewService) Review(ctx context.Context, adminID, quoteID uuid.UUID, dto ReviewQuoteDTO) (*model.ContractorQuote, error) {
	return s.quoteSvc.ApproveOrReject(ctx, adminID, quoteID, dto)
}

func (s *adminReviewService) Dashboard(ctx context.Context) (*Dashboard, error) {
	requests, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	quotes, err := s.quotes.CountByAdminStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	penalties, err := s.penalties.CountByStatus(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	revenue, err := s.quotes.SumSelectedPlatformRevenue(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &Dashboard{
		RequestsByStatus:    requests,
		QuotesByAdminStatus: quotes,
		PenaltiesByStatus:   penalties,
		PlatformRevenue:     revenue,
		GeneratedAt:         time.Now(),
	}, nil
}

func (s *adminReviewService) RequestDetail(ctx context.Context, requestID uuid.UUID) (*RequestDetail, error) {
	req, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, translate(err, "REQUEST_NOT_FOUND", "quote request not found")
	}
	assignments, err := s.assignments.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	quotes, err := s.quotes.ListByRequest(ctx, requestID, false)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &RequestDetail{
		Request:     req,
		Requester:   integration.ResolveUser(ctx, s.identity, req.UserID),
		Assignments: assignments,
		Quotes:      quotes,
	}, nil
}
