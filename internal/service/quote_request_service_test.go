package service_test

import (
	"context"
	"testing"

	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
)

func TestQuoteRequestService_CreateValidatesSize(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name string
		size string
		code string
	}{
		{"zero size", "0", pricing.CodeSystemSizeTooSmall},
		{"below minimum", "0.5", pricing.CodeSystemSizeTooSmall},
		{"above maximum", "1000.01", pricing.CodeSystemSizeTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.requests.Create(ctx, uuid.New(), service.CreateQuoteRequestDTO{
				SystemSizeKwp:   dec(tt.size),
				LocationAddress: "1 Main St",
			})
			assertCode(t, err, apperror.KindBusinessRule, tt.code)
		})
	}

	t.Run("missing address", func(t *testing.T) {
		_, err := e.requests.Create(ctx, uuid.New(), service.CreateQuoteRequestDTO{SystemSizeKwp: dec("5")})
		assertCode(t, err, apperror.KindBusinessRule, "VALIDATION_FAILED")
	})
}

func TestQuoteRequestService_CreateAndList(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	userID := uuid.New()

	req := e.createRequest(t, userID, "10")
	if req.Status != model.RequestPending {
		t.Fatalf("status = %s, want pending", req.Status)
	}
	e.createRequest(t, uuid.New(), "6")

	mine, total, err := e.requests.ListMine(ctx, userID, "", pagination.New(1, 10))
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if total != 1 || len(mine) != 1 || mine[0].ID != req.ID {
		t.Fatalf("ListMine returned %d/%d rows, want only the caller's request", len(mine), total)
	}

	logs, _, err := e.audit.GetAuditLogs(ctx, repository.AuditFilter{Action: model.ActionCreateQuoteRequest}, pagination.New(1, 10))
	if err != nil {
		t.Fatalf("audit logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 create audit rows, got %d", len(logs))
	}
}

func TestQuoteRequestService_GetAccess(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	contractor := uuid.New()

	req := e.createRequest(t, owner, "8")
	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{
		ContractorIDs: []uuid.UUID{contractor},
	}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	allowed := []service.Actor{
		{ID: owner, Role: service.RoleUser},
		{ID: uuid.New(), Role: service.RoleAdmin},
		{ID: contractor, Role: service.RoleContractor},
	}
	for _, actor := range allowed {
		if _, err := e.requests.Get(ctx, actor, req.ID); err != nil {
			t.Errorf("%s should see the request: %v", actor.Role, err)
		}
	}

	denied := []service.Actor{
		{ID: uuid.New(), Role: service.RoleUser},
		{ID: uuid.New(), Role: service.RoleContractor},
	}
	for _, actor := range denied {
		_, err := e.requests.Get(ctx, actor, req.ID)
		assertCode(t, err, apperror.KindForbidden, "REQUEST_ACCESS_DENIED")
	}

	_, err := e.requests.Get(ctx, allowed[1], uuid.New())
	assertCode(t, err, apperror.KindNotFound, "REQUEST_NOT_FOUND")
}

func TestQuoteRequestService_Cancel(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")

	_, err := e.requests.Cancel(ctx, uuid.New(), req.ID, service.CancelQuoteRequestDTO{Reason: "not mine"})
	assertCode(t, err, apperror.KindForbidden, "NOT_REQUEST_OWNER")

	cancelled, err := e.requests.Cancel(ctx, owner, req.ID, service.CancelQuoteRequestDTO{Reason: "moving house"})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != model.RequestCancelled || cancelled.CancelledAt == nil {
		t.Fatalf("request not cancelled: %+v", cancelled)
	}
	if cancelled.CancellationReason != "moving house" {
		t.Errorf("reason = %q", cancelled.CancellationReason)
	}

	_, err = e.requests.Cancel(ctx, owner, req.ID, service.CancelQuoteRequestDTO{})
	assertCode(t, err, apperror.KindConflict, "REQUEST_NOT_CANCELLABLE")

	_, err = e.quotes.Submit(ctx, uuid.New(), service.SubmitQuoteDTO{
		RequestID:                req.ID,
		BasePrice:                dec("20000"),
		PricePerKwp:              dec("2000"),
		InstallationTimelineDays: 30,
	})
	assertCode(t, err, apperror.KindConflict, "REQUEST_NOT_ACCEPTING_QUOTES")
}
