package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"solarquote/internal/integration"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func TestAdminReviewService_ReviewQueueFallsBackToPlaceholder(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	known, unknown := uuid.New(), uuid.New()
	req := e.createRequest(t, uuid.New(), "10")
	e.submitQuote(t, known, req.ID, "20000", "2000", 30)
	e.submitQuote(t, unknown, req.ID, "21000", "2100", 30)

	e.identity.EXPECT().GetContractorInfo(gomock.Any(), known).
		Return(integration.ContractorInfo{ID: known, Name: "Bright Roofs Ltd", VerificationLevel: "verified"}, nil)
	e.identity.EXPECT().GetContractorInfo(gomock.Any(), unknown).
		Return(integration.ContractorInfo{}, errors.New("identity service timeout"))

	items, total, err := e.admin.ReviewQueue(ctx, "", pagination.New(1, 10))
	if err != nil {
		t.Fatalf("review queue: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected two pending quotes, got %d", total)
	}
	for _, item := range items {
		if item.Request == nil || item.Request.ID != req.ID {
			t.Errorf("request summary missing for quote %s", item.Quote.ID)
		}
		switch item.Quote.ContractorID {
		case known:
			if item.Contractor.Name != "Bright Roofs Ltd" || item.Contractor.IsPlaceholder {
				t.Errorf("unexpected contractor info: %+v", item.Contractor)
			}
		case unknown:
			if !item.Contractor.IsPlaceholder {
				t.Errorf("failed lookup must degrade to a placeholder: %+v", item.Contractor)
			}
		}
	}

	_, _, err = e.admin.ReviewQueue(ctx, "archived", pagination.New(1, 10))
	assertCode(t, err, apperror.KindBusinessRule, "INVALID_STATUS")
}

func TestAdminReviewService_QuoteDetail(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	contractor := uuid.New()
	req := e.createRequest(t, uuid.New(), "10")
	quote := e.submitQuote(t, contractor, req.ID, "20000", "2000", 30)
	e.submitQuote(t, uuid.New(), req.ID, "19000", "1900", 30)
	e.submitQuote(t, uuid.New(), req.ID, "23000", "2300", 30)

	e.identity.EXPECT().GetContractorInfo(gomock.Any(), contractor).Return(integration.ContractorInfo{}, integration.ErrNotFound)

	if _, err := e.configs.Update(ctx, uuid.New(), service.UpdatePricingConfigDTO{
		MaxPricePerKwp:            dec("5000"),
		PlatformOverpricePercent:  dec("12"),
		PlatformCommissionPercent: dec("15"),
		VATPercent:                dec("0"),
		MinSystemSizeKwp:          dec("1"),
		MaxSystemSizeKwp:          dec("1000"),
	}); err != nil {
		t.Fatalf("update config: %v", err)
	}

	detail, err := e.admin.QuoteDetail(ctx, quote.ID)
	if err != nil {
		t.Fatalf("quote detail: %v", err)
	}
	if !detail.Contractor.IsPlaceholder {
		t.Error("unknown contractor must be a placeholder")
	}
	if detail.Preview == nil || !detail.PricingChanged {
		t.Fatalf("preview must reflect the raised overprice: %+v", detail.Preview)
	}
	assertDecimal(t, "preview total", detail.Preview.TotalUserPrice, "22400")
	if detail.Siblings.Count != 2 {
		t.Fatalf("siblings = %d, want 2", detail.Siblings.Count)
	}
	// sibling totals at submission time: 20900 and 25300
	assertDecimal(t, "sibling min", detail.Siblings.MinPrice, "20900")
	assertDecimal(t, "sibling max", detail.Siblings.MaxPrice, "25300")
	assertDecimal(t, "sibling avg", detail.Siblings.AvgPrice, "23100")

	_, err = e.admin.QuoteDetail(ctx, uuid.New())
	assertCode(t, err, apperror.KindNotFound, "QUOTE_NOT_FOUND")
}

func TestAdminReviewService_DashboardAndRequestDetail(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")
	e.createRequest(t, uuid.New(), "5")

	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{
		ContractorIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	quote := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	if _, err := e.admin.Review(ctx, uuid.New(), quote.ID, service.ReviewQuoteDTO{Decision: model.DecisionApprove}); err != nil {
		t.Fatalf("review: %v", err)
	}
	if _, err := e.quotes.Select(ctx, owner, quote.ID, service.SelectQuoteDTO{}); err != nil {
		t.Fatalf("select: %v", err)
	}

	dash, err := e.admin.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.RequestsByStatus[model.RequestQuoteSelected] != 1 || dash.RequestsByStatus[model.RequestPending] != 1 {
		t.Errorf("requests by status = %v", dash.RequestsByStatus)
	}
	if dash.QuotesByAdminStatus[model.AdminApproved] != 1 {
		t.Errorf("quotes by status = %v", dash.QuotesByAdminStatus)
	}
	assertDecimal(t, "platform revenue", dash.PlatformRevenue, "5000")

	e.identity.EXPECT().GetUserInfo(gomock.Any(), owner).Return(integration.UserInfo{ID: owner, Name: "Dana Field"}, nil)
	detail, err := e.admin.RequestDetail(ctx, req.ID)
	if err != nil {
		t.Fatalf("request detail: %v", err)
	}
	if detail.Requester.Name != "Dana Field" || len(detail.Assignments) != 2 || len(detail.Quotes) != 1 {
		t.Fatalf("unexpected request detail: %+v", detail)
	}
}

func TestAdminReviewService_ExportQuotes(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	approved := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	e.submitQuote(t, uuid.New(), req.ID, "21000", "2100", 30)
	e.approve(t, approved.ID)

	out, err := e.admin.ExportQuotes(ctx, repository.QuoteFilter{AdminStatus: model.AdminApproved})
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Quotes")
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header and one row, got %d rows", len(rows))
	}
	if rows[0][0] != "Quote ID" || rows[0][9] != "Total User Price" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != approved.ID.String() || rows[1][3] != "approved" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
	total, err := f.GetCellValue("Quotes", "J2", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatalf("read total: %v", err)
	}
	if total != "22000" {
		t.Fatalf("total user price cell = %q, want 22000", total)
	}
}
