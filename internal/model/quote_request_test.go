package model

import (
	"testing"
	"time"
)

func TestDeriveStatusFromAssignments(t *testing.T) {
	tests := []struct {
		name    string
		current QuoteRequestStatus
		tally   AssignmentTally
		want    QuoteRequestStatus
		changed bool
	}{
		{
			name:    "accepted contractor moves invited request in progress",
			current: RequestContractorsSelected,
			tally:   AssignmentTally{Assigned: 1, Accepted: 1},
			want:    RequestInProgress,
			changed: true,
		},
		{
			name:    "all rejected moves in progress request to rejected",
			current: RequestInProgress,
			tally:   AssignmentTally{Rejected: 3},
			want:    RequestRejected,
			changed: true,
		},
		{
			name:    "one rejected while others still viewing keeps status",
			current: RequestInProgress,
			tally:   AssignmentTally{Viewed: 1, Rejected: 1},
			want:    RequestInProgress,
			changed: false,
		},
		{
			name:    "accepted on in progress is a no-op",
			current: RequestInProgress,
			tally:   AssignmentTally{Accepted: 2},
			want:    RequestInProgress,
			changed: false,
		},
		{
			name:    "quotes received never regresses",
			current: RequestQuotesReceived,
			tally:   AssignmentTally{Rejected: 2},
			want:    RequestQuotesReceived,
			changed: false,
		},
		{
			name:    "selected request is final",
			current: RequestQuoteSelected,
			tally:   AssignmentTally{Accepted: 1},
			want:    RequestQuoteSelected,
			changed: false,
		},
		{
			name:    "no assignments leaves status alone",
			current: RequestInProgress,
			tally:   AssignmentTally{},
			want:    RequestInProgress,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := DeriveStatusFromAssignments(tt.current, tt.tally)
			if got != tt.want || changed != tt.changed {
				t.Fatalf("got (%s, %v), want (%s, %v)", got, changed, tt.want, tt.changed)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	if !CanTransition(RequestPending, RequestInProgress) {
		t.Fatal("pending -> in_progress must be legal")
	}
	if !CanTransition(RequestInProgress, RequestQuotesReceived) {
		t.Fatal("in_progress -> quotes_received must be legal")
	}
	if CanTransition(RequestQuoteSelected, RequestQuoteSelected) {
		t.Fatal("quote_selected is terminal")
	}
	if CanTransition(RequestCancelled, RequestPending) {
		t.Fatal("cancelled is terminal")
	}
	if CanTransition(RequestQuotesReceived, RequestInProgress) {
		t.Fatal("quotes_received must not fall back to in_progress")
	}
}

func TestSeverityForDaysOverdue(t *testing.T) {
	tests := []struct {
		days int
		want Severity
	}{
		{1, SeverityMinor},
		{3, SeverityMinor},
		{4, SeverityModerate},
		{7, SeverityModerate},
		{8, SeverityMajor},
		{14, SeverityMajor},
		{15, SeverityCritical},
		{90, SeverityCritical},
	}

	for _, tt := range tests {
		if got := SeverityForDaysOverdue(tt.days); got != tt.want {
			t.Errorf("SeverityForDaysOverdue(%d) = %s, want %s", tt.days, got, tt.want)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !RequestInProgress.AcceptsBids() {
		t.Error("in_progress accepts bids")
	}
	if RequestQuoteSelected.AcceptsBids() || RequestCancelled.AcceptsBids() {
		t.Error("terminal requests must not accept bids")
	}
	if !AssignmentViewed.AwaitingResponse() || AssignmentAccepted.AwaitingResponse() {
		t.Error("only assigned/viewed await a response")
	}
	if PenaltyWaived.IsActive() || !PenaltyDisputed.IsActive() {
		t.Error("waived penalties are inactive, disputed ones are active")
	}
	if _, ok := ResponseAccept.Status(); !ok {
		t.Error("accept must map to a status")
	}
	if _, ok := AssignmentResponse("maybe").Status(); ok {
		t.Error("unknown responses must be rejected")
	}
}

func TestInstallationDueDate(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q := ContractorQuote{CreatedAt: created, InstallationTimelineDays: 30}

	want := time.Date(2026, 3, 31, 10, 0, 0, 0, time.UTC)
	if !q.InstallationDueDate().Equal(want) {
		t.Fatalf("due date = %s, want %s", q.InstallationDueDate(), want)
	}
	if q.IsExpired(created) {
		t.Fatal("zero ValidUntil never expires")
	}
}
