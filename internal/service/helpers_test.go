package service_test

import (
	"context"
	"testing"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/integration/mocks"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/internal/testutil"
	"solarquote/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// testEnv wires every service over one in-memory database.
type testEnv struct {
	db       *gorm.DB
	ctrl     *gomock.Controller
	wallet   *mocks.MockWalletClient
	identity *mocks.MockIdentityClient

	requestRepo    repository.QuoteRequestRepository
	assignmentRepo repository.AssignmentRepository
	quoteRepo      repository.ContractorQuoteRepository
	penaltyRepo    repository.PenaltyRepository
	auditRepo      repository.AuditRepository

	configs     service.PricingConfigService
	requests    service.QuoteRequestService
	assignments service.AssignmentService
	quotes      service.ContractorQuoteService
	penalties   service.PenaltyService
	detector    service.SLADetector
	scheduler   *service.PenaltyScheduler
	admin       service.AdminReviewService
	audit       service.AuditService
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithNotifier(t, integration.NopNotifier{})
}

func newTestEnvWithNotifier(t *testing.T, notifier integration.Notifier) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	ctrl := gomock.NewController(t)
	e := &testEnv{
		db:       db,
		ctrl:     ctrl,
		wallet:   mocks.NewMockWalletClient(ctrl),
		identity: mocks.NewMockIdentityClient(ctrl),

		requestRepo:    repository.NewQuoteRequestRepository(db),
		assignmentRepo: repository.NewAssignmentRepository(db),
		quoteRepo:      repository.NewContractorQuoteRepository(db),
		penaltyRepo:    repository.NewPenaltyRepository(db),
		auditRepo:      repository.NewAuditRepository(db),
	}

	tx := repository.NewTransactionManager(db)
	e.configs = service.NewPricingConfigService(tx, repository.NewBusinessConfigRepository(db), e.auditRepo)
	e.requests = service.NewQuoteRequestService(tx, e.requestRepo, e.assignmentRepo, e.auditRepo, e.configs)
	e.assignments = service.NewAssignmentService(tx, e.requestRepo, e.assignmentRepo, e.auditRepo, notifier)
	e.quotes = service.NewContractorQuoteService(tx, e.requestRepo, e.quoteRepo, repository.NewLineItemRepository(db),
		repository.NewComparisonRepository(db), e.auditRepo, e.configs, notifier)
	e.penalties = service.NewPenaltyService(tx, e.quoteRepo, repository.NewPenaltyRuleRepository(db), e.penaltyRepo,
		e.auditRepo, e.wallet, notifier)
	e.detector = service.NewSLADetector(e.quoteRepo, e.penaltyRepo)
	e.scheduler = service.NewPenaltyScheduler(e.detector, e.penalties, e.penaltyRepo, service.SchedulerConfig{Timeout: time.Minute})
	e.admin = service.NewAdminReviewService(e.requestRepo, e.assignmentRepo, e.quoteRepo, e.penaltyRepo, e.quotes, e.configs, e.identity)
	e.audit = service.NewAuditService(e.auditRepo)
	return e
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, field string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(dec(want)) {
		t.Errorf("%s = %s, want %s", field, got.String(), want)
	}
}

func assertCode(t *testing.T, err error, kind apperror.Kind, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s/%s error, got nil", kind, code)
	}
	if apperror.KindOf(err) != kind || apperror.CodeOf(err) != code {
		t.Fatalf("got %s/%s (%v), want %s/%s", apperror.KindOf(err), apperror.CodeOf(err), err, kind, code)
	}
}

func (e *testEnv) createRequest(t *testing.T, userID uuid.UUID, sizeKwp string) *model.QuoteRequest {
	t.Helper()
	req, err := e.requests.Create(context.Background(), userID, service.CreateQuoteRequestDTO{
		SystemSizeKwp:   dec(sizeKwp),
		LocationAddress: "12 Sunny Road, Springfield",
		ServiceArea:     "springfield",
	})
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	return req
}

func (e *testEnv) submitQuote(t *testing.T, contractorID, requestID uuid.UUID, basePrice, pricePerKwp string, timelineDays int) *model.ContractorQuote {
	t.Helper()
	quote, err := e.quotes.Submit(context.Background(), contractorID, service.SubmitQuoteDTO{
		RequestID:                requestID,
		BasePrice:                dec(basePrice),
		PricePerKwp:              dec(pricePerKwp),
		InstallationTimelineDays: timelineDays,
		SystemSpecs:              model.SystemSpecs{PanelBrand: "Helios", PanelCount: 24, WarrantyYears: 10},
	})
	if err != nil {
		t.Fatalf("submit quote: %v", err)
	}
	return quote
}

func (e *testEnv) approve(t *testing.T, quoteID uuid.UUID) *model.ContractorQuote {
	t.Helper()
	quote, err := e.quotes.ApproveOrReject(context.Background(), uuid.New(), quoteID, service.ReviewQuoteDTO{
		Decision: model.DecisionApprove,
	})
	if err != nil {
		t.Fatalf("approve quote: %v", err)
	}
	return quote
}

func (e *testEnv) requestStatus(t *testing.T, requestID uuid.UUID) model.QuoteRequestStatus {
	t.Helper()
	req, err := e.requestRepo.FindByID(context.Background(), requestID)
	if err != nil {
		t.Fatalf("load request: %v", err)
	}
	return req.Status
}

// backdate moves a quote's creation time so its installation deadline lies in the past.
func (e *testEnv) backdate(t *testing.T, quoteID uuid.UUID, createdAt time.Time) {
	t.Helper()
	if err := e.db.Model(&model.ContractorQuote{}).Where("id = ?", quoteID).
		UpdateColumn("created_at", createdAt).Error; err != nil {
		t.Fatalf("backdate quote: %v", err)
	}
}

// selectedOverdueQuote returns an approved, selected quote whose installation is daysOverdue late.
func (e *testEnv) selectedOverdueQuote(t *testing.T, contractorID uuid.UUID, daysOverdue int) *model.ContractorQuote {
	t.Helper()
	ctx := context.Background()
	userID := uuid.New()

	req := e.createRequest(t, userID, "10")
	quote := e.submitQuote(t, contractorID, req.ID, "20000", "2000", 30)
	e.approve(t, quote.ID)
	if _, err := e.quotes.Select(ctx, userID, quote.ID, service.SelectQuoteDTO{Reason: "best price"}); err != nil {
		t.Fatalf("select quote: %v", err)
	}
	e.backdate(t, quote.ID, time.Now().AddDate(0, 0, -(30 + daysOverdue)))
	return quote
}
