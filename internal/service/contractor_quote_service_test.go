package service_test

import (
	"context"
	"testing"

	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"

	"github.com/google/uuid"
)

func TestContractorQuoteService_SubmitAndApproveEndToEnd(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")

	quote := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 45)
	if quote.AdminStatus != model.AdminPending {
		t.Fatalf("admin status = %s, want pending", quote.AdminStatus)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestQuotesReceived {
		t.Fatalf("first quote must move the request to quotes_received, got %s", got)
	}

	approved := e.approve(t, quote.ID)
	if approved.AdminStatus != model.AdminApproved || approved.ReviewedBy == nil {
		t.Fatalf("quote not approved: %+v", approved)
	}

	stored, err := e.quoteRepo.FindByID(ctx, quote.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	assertDecimal(t, "overprice_amount", stored.OverpriceAmount, "2000.00")
	assertDecimal(t, "total_user_price", stored.TotalUserPrice, "22000.00")
	assertDecimal(t, "commission_amount", stored.CommissionAmount, "3000.00")
	assertDecimal(t, "contractor_net", stored.ContractorNet, "17000.00")
	assertDecimal(t, "platform_revenue", stored.PlatformRevenue, "5000.00")
}

func TestContractorQuoteService_SubmitRejections(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	contractor := uuid.New()
	e.submitQuote(t, contractor, req.ID, "20000", "2000", 30)

	tests := []struct {
		name string
		dto  service.SubmitQuoteDTO
		kind apperror.Kind
		code string
	}{
		{
			name: "duplicate bid",
			dto:  service.SubmitQuoteDTO{RequestID: req.ID, BasePrice: dec("19000"), PricePerKwp: dec("1900"), InstallationTimelineDays: 30},
			kind: apperror.KindConflict,
			code: "DUPLICATE_QUOTE",
		},
		{
			name: "unknown request",
			dto:  service.SubmitQuoteDTO{RequestID: uuid.New(), BasePrice: dec("20000"), PricePerKwp: dec("2000"), InstallationTimelineDays: 30},
			kind: apperror.KindNotFound,
			code: "REQUEST_NOT_FOUND",
		},
		{
			name: "timeline out of range",
			dto:  service.SubmitQuoteDTO{RequestID: req.ID, BasePrice: dec("20000"), PricePerKwp: dec("2000"), InstallationTimelineDays: 400},
			kind: apperror.KindBusinessRule,
			code: "VALIDATION_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.quotes.Submit(ctx, contractor, tt.dto)
			assertCode(t, err, tt.kind, tt.code)
		})
	}

	t.Run("price mismatch", func(t *testing.T) {
		_, err := e.quotes.Submit(ctx, uuid.New(), service.SubmitQuoteDTO{
			RequestID: req.ID, BasePrice: dec("100"), PricePerKwp: dec("2"), InstallationTimelineDays: 30,
		})
		assertCode(t, err, apperror.KindBusinessRule, pricing.CodePriceMismatch)
	})

	t.Run("price per kwp above cap", func(t *testing.T) {
		_, err := e.quotes.Submit(ctx, uuid.New(), service.SubmitQuoteDTO{
			RequestID: req.ID, BasePrice: dec("60000"), PricePerKwp: dec("6000"), InstallationTimelineDays: 30,
		})
		assertCode(t, err, apperror.KindBusinessRule, pricing.CodePricePerKwpTooHigh)
	})
}

func TestContractorQuoteService_SubmitWithLineItems(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")

	items := []pricing.LineItemInput{
		{ItemName: "Panels", Unit: "pcs", Quantity: dec("25"), UnitPrice: dec("600")},
		{ItemName: "Inverter", Unit: "pcs", Quantity: dec("1"), UnitPrice: dec("3500")},
		{ItemName: "Labour", Unit: "h", Quantity: dec("12.5"), UnitPrice: dec("40")},
	}

	_, err := e.quotes.Submit(ctx, uuid.New(), service.SubmitQuoteDTO{
		RequestID: req.ID, BasePrice: dec("20000"), PricePerKwp: dec("2000"), InstallationTimelineDays: 30,
		LineItems: items,
	})
	assertCode(t, err, apperror.KindBusinessRule, pricing.CodeLineItemsTotalMismatch)

	quote, err := e.quotes.Submit(ctx, uuid.New(), service.SubmitQuoteDTO{
		RequestID: req.ID, BasePrice: dec("19000"), PricePerKwp: dec("1900"), InstallationTimelineDays: 30,
		LineItems: items,
	})
	if err != nil {
		t.Fatalf("submit with line items: %v", err)
	}
	assertDecimal(t, "line_items_total", quote.LineItemsTotal, "19000")

	stored, err := e.quoteRepo.FindByID(ctx, quote.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(stored.LineItems) != 3 || stored.LineItems[0].ItemName != "Panels" || stored.LineItems[2].Position != 3 {
		t.Fatalf("line items not stored in order: %+v", stored.LineItems)
	}
	assertDecimal(t, "panels total", stored.LineItems[0].TotalPrice, "15000")
}

func TestContractorQuoteService_Review(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	quote := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)

	_, err := e.quotes.ApproveOrReject(ctx, uuid.New(), quote.ID, service.ReviewQuoteDTO{Decision: model.DecisionReject})
	assertCode(t, err, apperror.KindBusinessRule, "REJECTION_REASON_REQUIRED")

	rejected, err := e.quotes.ApproveOrReject(ctx, uuid.New(), quote.ID, service.ReviewQuoteDTO{
		Decision: model.DecisionReject, RejectionReason: "panel brand not certified",
	})
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.AdminStatus != model.AdminRejected || rejected.RejectionReason != "panel brand not certified" {
		t.Fatalf("unexpected quote after reject: %+v", rejected)
	}

	_, err = e.quotes.ApproveOrReject(ctx, uuid.New(), quote.ID, service.ReviewQuoteDTO{Decision: model.DecisionApprove})
	assertCode(t, err, apperror.KindConflict, "QUOTE_ALREADY_REVIEWED")

	_, err = e.quotes.ApproveOrReject(ctx, uuid.New(), uuid.New(), service.ReviewQuoteDTO{Decision: model.DecisionApprove})
	assertCode(t, err, apperror.KindNotFound, "QUOTE_NOT_FOUND")
}

func TestContractorQuoteService_ApprovalUsesCurrentConfig(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	quote := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)

	if _, err := e.configs.Update(ctx, uuid.New(), service.UpdatePricingConfigDTO{
		MaxPricePerKwp:            dec("5000"),
		PlatformOverpricePercent:  dec("12"),
		PlatformCommissionPercent: dec("10"),
		VATPercent:                dec("20"),
		MinSystemSizeKwp:          dec("1"),
		MaxSystemSizeKwp:          dec("1000"),
	}); err != nil {
		t.Fatalf("update config: %v", err)
	}

	approved := e.approve(t, quote.ID)
	assertDecimal(t, "overprice_amount", approved.OverpriceAmount, "2400")
	assertDecimal(t, "total_user_price", approved.TotalUserPrice, "22400")
	assertDecimal(t, "commission_amount", approved.CommissionAmount, "2000")
	assertDecimal(t, "vat_amount", approved.VATAmount, "4480")
	assertDecimal(t, "total_with_vat", approved.TotalWithVAT, "26880")
	if approved.PricingConfigVer != 1 {
		t.Errorf("pricing config version = %d, want 1", approved.PricingConfigVer)
	}
}

func TestContractorQuoteService_SelectSingleWinner(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")

	a := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	b := e.submitQuote(t, uuid.New(), req.ID, "21000", "2100", 20)
	c := e.submitQuote(t, uuid.New(), req.ID, "19000", "1900", 40)
	for _, q := range []*model.ContractorQuote{a, b} {
		e.approve(t, q.ID)
	}

	_, err := e.quotes.Select(ctx, owner, c.ID, service.SelectQuoteDTO{})
	assertCode(t, err, apperror.KindBusinessRule, "QUOTE_NOT_APPROVED")

	_, err = e.quotes.Select(ctx, uuid.New(), a.ID, service.SelectQuoteDTO{})
	assertCode(t, err, apperror.KindForbidden, "NOT_REQUEST_OWNER")

	selected, err := e.quotes.Select(ctx, owner, a.ID, service.SelectQuoteDTO{Reason: "reliable installer"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if !selected.IsSelected || selected.SelectedAt == nil {
		t.Fatalf("quote not marked selected: %+v", selected)
	}

	all, err := e.quoteRepo.ListByRequest(ctx, req.ID, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	count := 0
	for _, q := range all {
		if q.IsSelected {
			count++
			if q.ID != a.ID {
				t.Errorf("wrong quote selected: %s", q.ID)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one selected quote, got %d", count)
	}

	stored, err := e.requestRepo.FindByID(ctx, req.ID)
	if err != nil {
		t.Fatalf("reload request: %v", err)
	}
	if stored.Status != model.RequestQuoteSelected || stored.SelectedQuoteID == nil || *stored.SelectedQuoteID != a.ID {
		t.Fatalf("request not closed on selection: %+v", stored)
	}

	_, err = e.quotes.Select(ctx, owner, b.ID, service.SelectQuoteDTO{})
	assertCode(t, err, apperror.KindBusinessRule, "QUOTE_ALREADY_SELECTED")
}

func TestContractorQuoteService_SelectRefusesExpired(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")
	quote := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	e.approve(t, quote.ID)

	if err := e.db.Model(&model.ContractorQuote{}).Where("id = ?", quote.ID).
		UpdateColumn("valid_until", quote.CreatedAt.AddDate(0, 0, -1)).Error; err != nil {
		t.Fatalf("expire quote: %v", err)
	}

	_, err := e.quotes.Select(ctx, owner, quote.ID, service.SelectQuoteDTO{})
	assertCode(t, err, apperror.KindBusinessRule, "QUOTE_EXPIRED")
	if got := e.requestStatus(t, req.ID); got != model.RequestQuotesReceived {
		t.Fatalf("failed selection must leave the request untouched, got %s", got)
	}
}

func TestContractorQuoteService_Compare(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")

	a := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	b := e.submitQuote(t, uuid.New(), req.ID, "19000", "1900", 45)
	c := e.submitQuote(t, uuid.New(), req.ID, "23000", "2300", 14)
	for _, q := range []*model.ContractorQuote{a, b, c} {
		e.approve(t, q.ID)
	}

	_, err := e.quotes.Compare(ctx, owner, req.ID, service.CompareQuotesDTO{QuoteIDs: []uuid.UUID{a.ID, a.ID}})
	assertCode(t, err, apperror.KindBusinessRule, "COMPARISON_REQUIRES_TWO_QUOTES")

	other := e.createRequest(t, owner, "10")
	foreign := e.submitQuote(t, uuid.New(), other.ID, "20000", "2000", 30)
	_, err = e.quotes.Compare(ctx, owner, req.ID, service.CompareQuotesDTO{QuoteIDs: []uuid.UUID{a.ID, foreign.ID}})
	assertCode(t, err, apperror.KindBusinessRule, "QUOTE_NOT_IN_REQUEST")

	result, err := e.quotes.Compare(ctx, owner, req.ID, service.CompareQuotesDTO{QuoteIDs: []uuid.UUID{a.ID, b.ID, c.ID}})
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	// total user prices at 10% overprice: 22000, 20900, 25300
	assertDecimal(t, "min_price", result.MinPrice, "20900")
	assertDecimal(t, "max_price", result.MaxPrice, "25300")
	assertDecimal(t, "avg_price", result.AvgPrice, "22733.33")
	assertDecimal(t, "price_range", result.PriceRange, "4400")
	if result.CheapestQuoteID != b.ID {
		t.Errorf("cheapest = %s, want %s", result.CheapestQuoteID, b.ID)
	}
	if result.FastestQuoteID != c.ID {
		t.Errorf("fastest = %s, want %s", result.FastestQuoteID, c.ID)
	}
	if result.ComparisonID == uuid.Nil {
		t.Error("comparison was not stored")
	}
}

func TestContractorQuoteService_Visibility(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	contractor := uuid.New()
	req := e.createRequest(t, owner, "10")
	approved := e.submitQuote(t, contractor, req.ID, "20000", "2000", 30)
	pending := e.submitQuote(t, uuid.New(), req.ID, "21000", "2100", 30)
	e.approve(t, approved.ID)

	list, err := e.quotes.ListForRequest(ctx, owner, req.ID)
	if err != nil {
		t.Fatalf("list for request: %v", err)
	}
	if len(list) != 1 || list[0].ID != approved.ID {
		t.Fatalf("requester must only see approved quotes, got %d", len(list))
	}

	_, err = e.quotes.Get(ctx, service.Actor{ID: owner, Role: service.RoleUser}, pending.ID)
	assertCode(t, err, apperror.KindForbidden, "QUOTE_ACCESS_DENIED")

	if _, err := e.quotes.Get(ctx, service.Actor{ID: contractor, Role: service.RoleContractor}, approved.ID); err != nil {
		t.Fatalf("contractor must see own quote: %v", err)
	}
	_, err = e.quotes.Get(ctx, service.Actor{ID: contractor, Role: service.RoleContractor}, pending.ID)
	assertCode(t, err, apperror.KindForbidden, "QUOTE_ACCESS_DENIED")

	_, err = e.quotes.ListForRequest(ctx, uuid.New(), req.ID)
	assertCode(t, err, apperror.KindForbidden, "NOT_REQUEST_OWNER")
}

func TestContractorQuoteService_Preview(t *testing.T) {
	e := newTestEnv(t)

	b, err := e.quotes.Preview(context.Background(), service.PreviewPricingDTO{
		BasePrice: dec("20000"), PricePerKwp: dec("2000"), SystemSizeKwp: dec("10"),
	})
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	assertDecimal(t, "platform_revenue", b.PlatformRevenue, "5000")
	assertDecimal(t, "contractor_net", b.ContractorNet, "17000")
}
