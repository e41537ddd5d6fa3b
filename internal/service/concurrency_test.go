package service_test

import (
	"context"
	"sync"
	"testing"

	"solarquote/internal/model"
	"solarquote/internal/service"

	"github.com/google/uuid"
)

func (e *testEnv) countStatusChanges(t *testing.T, requestID uuid.UUID) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(&model.AuditLog{}).
		Where("action = ? AND entity_id = ?", model.ActionRequestStatusChange, requestID.String()).
		Count(&n).Error; err != nil {
		t.Fatalf("count status changes: %v", err)
	}
	return n
}

func TestContractorQuoteService_ParallelFirstBidsTransitionOnce(t *testing.T) {
	e := newTestEnv(t)
	req := e.createRequest(t, uuid.New(), "10")

	const bidders = 8
	var wg sync.WaitGroup
	errs := make(chan error, bidders)
	for i := 0; i < bidders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.quotes.Submit(context.Background(), uuid.New(), service.SubmitQuoteDTO{
				RequestID:                req.ID,
				BasePrice:                dec("20000"),
				PricePerKwp:              dec("2000"),
				InstallationTimelineDays: 30,
				SystemSpecs:              model.SystemSpecs{PanelBrand: "Helios", PanelCount: 24},
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
	}

	if got := e.requestStatus(t, req.ID); got != model.RequestQuotesReceived {
		t.Fatalf("request status = %s, want quotes_received", got)
	}
	if n := e.countStatusChanges(t, req.ID); n != 1 {
		t.Fatalf("status change audit rows = %d, want exactly 1", n)
	}

	var quotes int64
	if err := e.db.Model(&model.ContractorQuote{}).Where("request_id = ?", req.ID).Count(&quotes).Error; err != nil {
		t.Fatalf("count quotes: %v", err)
	}
	if quotes != bidders {
		t.Fatalf("quotes = %d, want %d", quotes, bidders)
	}
}

func TestAssignmentService_ParallelRejectionsTransitionOnce(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")

	const invited = 6
	contractors := make([]uuid.UUID, invited)
	for i := range contractors {
		contractors[i] = uuid.New()
	}
	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: contractors}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	before := e.countStatusChanges(t, req.ID)

	var wg sync.WaitGroup
	errs := make(chan error, invited)
	for _, id := range contractors {
		wg.Add(1)
		go func(contractorID uuid.UUID) {
			defer wg.Done()
			_, err := e.assignments.RespondToAssignment(context.Background(), contractorID, req.ID,
				service.RespondAssignmentDTO{Response: model.ResponseReject, Notes: "fully booked"})
			errs <- err
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("respond: %v", err)
		}
	}

	if got := e.requestStatus(t, req.ID); got != model.RequestRejected {
		t.Fatalf("request status = %s, want rejected", got)
	}
	if delta := e.countStatusChanges(t, req.ID) - before; delta != 1 {
		t.Fatalf("status changes after responses = %d, want exactly 1", delta)
	}
}
