package service_test

import (
	"context"
	"errors"
	"testing"

	"solarquote/internal/integration/mocks"
	"solarquote/internal/model"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestAssignmentService_ReassignIsFullReplace(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	c1, c2, c3 := uuid.New(), uuid.New(), uuid.New()

	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{c1, c3}}); err != nil {
		t.Fatalf("first assign: %v", err)
	}
	if _, err := e.assignments.RespondToAssignment(ctx, c3, req.ID, service.RespondAssignmentDTO{Response: model.ResponseReject}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{c1, c2, c2}}); err != nil {
			t.Fatalf("assign #%d: %v", i+1, err)
		}
	}

	rows, err := e.assignments.ListForRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(rows))
	}
	for _, a := range rows {
		if a.Status != model.AssignmentAssigned {
			t.Errorf("assignment %s status = %s, want assigned", a.ContractorID, a.Status)
		}
		if a.ContractorID == c3 {
			t.Errorf("contractor dropped from the set still assigned")
		}
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestInProgress {
		t.Fatalf("request status = %s, want in_progress", got)
	}
}

func TestAssignmentService_AssignRejectsClosedRequests(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")
	if _, err := e.requests.Cancel(ctx, owner, req.ID, service.CancelQuoteRequestDTO{}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	_, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{uuid.New()}})
	assertCode(t, err, apperror.KindConflict, "REQUEST_NOT_ASSIGNABLE")

	_, err = e.assignments.AssignContractors(ctx, uuid.New(), uuid.New(), service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{uuid.New()}})
	assertCode(t, err, apperror.KindNotFound, "REQUEST_NOT_FOUND")

	_, err = e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{})
	assertCode(t, err, apperror.KindBusinessRule, "VALIDATION_FAILED")
}

func TestAssignmentService_AssignKeepsQuotesReceived(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)

	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{uuid.New()}}); err != nil {
		t.Fatalf("assign: %v", err)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestQuotesReceived {
		t.Fatalf("request status = %s, want quotes_received", got)
	}
}

func TestAssignmentService_InviteContractors(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	owner := uuid.New()
	req := e.createRequest(t, owner, "10")
	contractor := uuid.New()

	_, err := e.assignments.InviteContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{contractor}})
	assertCode(t, err, apperror.KindForbidden, "NOT_REQUEST_OWNER")

	if _, err := e.assignments.InviteContractors(ctx, owner, req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{contractor}}); err != nil {
		t.Fatalf("invite: %v", err)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestContractorsSelected {
		t.Fatalf("request status = %s, want contractors_selected", got)
	}

	if _, err := e.assignments.RespondToAssignment(ctx, contractor, req.ID, service.RespondAssignmentDTO{Response: model.ResponseAccept}); err != nil {
		t.Fatalf("accept: %v", err)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestInProgress {
		t.Fatalf("request status = %s, want in_progress after acceptance", got)
	}

	_, err = e.assignments.InviteContractors(ctx, owner, req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{uuid.New()}})
	assertCode(t, err, apperror.KindConflict, "REQUEST_NOT_INVITABLE")
}

func TestAssignmentService_Respond(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	c1, c2 := uuid.New(), uuid.New()

	if _, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{c1, c2}}); err != nil {
		t.Fatalf("assign: %v", err)
	}

	viewed, err := e.assignments.MarkViewed(ctx, c1, req.ID)
	if err != nil {
		t.Fatalf("mark viewed: %v", err)
	}
	if viewed.Status != model.AssignmentViewed || viewed.ViewedAt == nil {
		t.Fatalf("assignment not viewed: %+v", viewed)
	}

	a, err := e.assignments.RespondToAssignment(ctx, c1, req.ID, service.RespondAssignmentDTO{Response: model.ResponseReject, Notes: "fully booked"})
	if err != nil {
		t.Fatalf("reject c1: %v", err)
	}
	if a.Status != model.AssignmentRejected || a.RespondedAt == nil || a.ResponseNotes != "fully booked" {
		t.Fatalf("unexpected assignment after reject: %+v", a)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestInProgress {
		t.Fatalf("one rejection of two must keep in_progress, got %s", got)
	}

	_, err = e.assignments.RespondToAssignment(ctx, c1, req.ID, service.RespondAssignmentDTO{Response: model.ResponseAccept})
	assertCode(t, err, apperror.KindBusinessRule, "ALREADY_RESPONDED")

	if _, err := e.assignments.RespondToAssignment(ctx, c2, req.ID, service.RespondAssignmentDTO{Response: model.ResponseReject}); err != nil {
		t.Fatalf("reject c2: %v", err)
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestRejected {
		t.Fatalf("all rejected must move the request to rejected, got %s", got)
	}

	_, err = e.assignments.RespondToAssignment(ctx, uuid.New(), req.ID, service.RespondAssignmentDTO{Response: model.ResponseAccept})
	assertCode(t, err, apperror.KindNotFound, "ASSIGNMENT_NOT_FOUND")

	_, err = e.assignments.RespondToAssignment(ctx, c2, req.ID, service.RespondAssignmentDTO{Response: "maybe"})
	assertCode(t, err, apperror.KindBusinessRule, "VALIDATION_FAILED")

	list, total, err := e.assignments.ListForContractor(ctx, c2, model.AssignmentRejected, pagination.New(1, 10))
	if err != nil {
		t.Fatalf("list for contractor: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("expected one rejected assignment for c2, got %d", total)
	}
}

func TestAssignmentService_NotifyFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)
	e := newTestEnvWithNotifier(t, notifier)
	ctx := context.Background()
	req := e.createRequest(t, uuid.New(), "10")
	contractor := uuid.New()

	notifier.EXPECT().
		NotifyContractorsAssigned(gomock.Any(), req.ID, []uuid.UUID{contractor}).
		Return(errors.New("hub offline")).
		Times(1)

	assigned, err := e.assignments.AssignContractors(ctx, uuid.New(), req.ID, service.AssignContractorsDTO{ContractorIDs: []uuid.UUID{contractor}})
	if err != nil {
		t.Fatalf("assign must succeed when notification fails: %v", err)
	}
	if len(assigned) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(assigned))
	}
	if got := e.requestStatus(t, req.ID); got != model.RequestInProgress {
		t.Fatalf("request status = %s, want in_progress", got)
	}
}
