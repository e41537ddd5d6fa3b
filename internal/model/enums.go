package model

// QuoteRequestStatus is the lifecycle state of a QuoteRequest.
type QuoteRequestStatus string

const (
	RequestPending             QuoteRequestStatus = "pending"
	RequestContractorsSelected QuoteRequestStatus = "contractors_selected"
	RequestQuotesReceived      QuoteRequestStatus = "quotes_received"
	RequestInProgress          QuoteRequestStatus = "in_progress"
	RequestQuoteSelected       QuoteRequestStatus = "quote_selected"
	RequestRejected            QuoteRequestStatus = "rejected"
	RequestCancelled           QuoteRequestStatus = "cancelled"
)

func (s QuoteRequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestContractorsSelected, RequestQuotesReceived, RequestInProgress,
		RequestQuoteSelected, RequestRejected, RequestCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the request can no longer re-enter bidding.
func (s QuoteRequestStatus) IsTerminal() bool {
	switch s {
	case RequestQuoteSelected, RequestCancelled:
		return true
	case RequestPending, RequestContractorsSelected, RequestQuotesReceived, RequestInProgress, RequestRejected:
		return false
	}
	return false
}

// AcceptsBids reports whether contractors may submit quotes in this state.
func (s QuoteRequestStatus) AcceptsBids() bool {
	switch s {
	case RequestPending, RequestContractorsSelected, RequestInProgress, RequestQuotesReceived:
		return true
	case RequestQuoteSelected, RequestRejected, RequestCancelled:
		return false
	}
	return false
}

// AcceptsAssignments reports whether contractors may be (re)assigned in this state.
func (s QuoteRequestStatus) AcceptsAssignments() bool {
	switch s {
	case RequestPending, RequestContractorsSelected, RequestInProgress, RequestQuotesReceived, RequestRejected:
		return true
	case RequestQuoteSelected, RequestCancelled:
		return false
	}
	return false
}

// AssignmentStatus is the invite lifecycle of a ContractorAssignment.
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "assigned"
	AssignmentViewed   AssignmentStatus = "viewed"
	AssignmentAccepted AssignmentStatus = "accepted"
	AssignmentRejected AssignmentStatus = "rejected"
)

func (s AssignmentStatus) Valid() bool {
	switch s {
	case AssignmentAssigned, AssignmentViewed, AssignmentAccepted, AssignmentRejected:
		return true
	}
	return false
}

// AwaitingResponse reports whether the contractor may still accept or reject.
func (s AssignmentStatus) AwaitingResponse() bool {
	switch s {
	case AssignmentAssigned, AssignmentViewed:
		return true
	case AssignmentAccepted, AssignmentRejected:
		return false
	}
	return false
}

// AssignmentResponse is a contractor's answer to an invitation.
type AssignmentResponse string

const (
	ResponseAccept AssignmentResponse = "accept"
	ResponseReject AssignmentResponse = "reject"
)

func (r AssignmentResponse) Status() (AssignmentStatus, bool) {
	switch r {
	case ResponseAccept:
		return AssignmentAccepted, true
	case ResponseReject:
		return AssignmentRejected, true
	}
	return "", false
}

// AdminStatus is the admin review state of a ContractorQuote.
type AdminStatus string

const (
	AdminPending  AdminStatus = "pending"
	AdminApproved AdminStatus = "approved"
	AdminRejected AdminStatus = "rejected"
)

func (s AdminStatus) Valid() bool {
	switch s {
	case AdminPending, AdminApproved, AdminRejected:
		return true
	}
	return false
}

// ReviewDecision is an admin's verdict on a pending quote.
type ReviewDecision string

const (
	DecisionApprove ReviewDecision = "approve"
	DecisionReject  ReviewDecision = "reject"
)

func (d ReviewDecision) AdminStatus() (AdminStatus, bool) {
	switch d {
	case DecisionApprove:
		return AdminApproved, true
	case DecisionReject:
		return AdminRejected, true
	}
	return "", false
}

// PenaltyType names the contractual obligation a penalty enforces.
type PenaltyType string

const (
	PenaltyLateInstallation     PenaltyType = "late_installation"
	PenaltyMissedAppointment    PenaltyType = "missed_appointment"
	PenaltyPoorQuality          PenaltyType = "poor_quality"
	PenaltyCommunicationFailure PenaltyType = "communication_failure"
	PenaltyContractBreach       PenaltyType = "contract_breach"
)

func (t PenaltyType) Valid() bool {
	switch t {
	case PenaltyLateInstallation, PenaltyMissedAppointment, PenaltyPoorQuality,
		PenaltyCommunicationFailure, PenaltyContractBreach:
		return true
	}
	return false
}

// Severity grades a violation.
type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityModerate, SeverityMajor, SeverityCritical:
		return true
	}
	return false
}

// SeverityForDaysOverdue grades an overdue installation.
func SeverityForDaysOverdue(days int) Severity {
	switch {
	case days <= 3:
		return SeverityMinor
	case days <= 7:
		return SeverityModerate
	case days <= 14:
		return SeverityMajor
	default:
		return SeverityCritical
	}
}

// AmountCalculation selects how a rule turns into money.
type AmountCalculation string

const (
	AmountFixed      AmountCalculation = "fixed"
	AmountPercentage AmountCalculation = "percentage"
	AmountDaily      AmountCalculation = "daily"
)

func (a AmountCalculation) Valid() bool {
	switch a {
	case AmountFixed, AmountPercentage, AmountDaily:
		return true
	}
	return false
}

// PenaltyStatus is the lifecycle of a PenaltyInstance.
type PenaltyStatus string

const (
	PenaltyPending  PenaltyStatus = "pending"
	PenaltyApplied  PenaltyStatus = "applied"
	PenaltyDisputed PenaltyStatus = "disputed"
	PenaltyWaived   PenaltyStatus = "waived"
	PenaltyReversed PenaltyStatus = "reversed"
)

func (s PenaltyStatus) Valid() bool {
	switch s {
	case PenaltyPending, PenaltyApplied, PenaltyDisputed, PenaltyWaived, PenaltyReversed:
		return true
	}
	return false
}

// IsActive reports whether the penalty still counts for duplicate detection.
func (s PenaltyStatus) IsActive() bool {
	switch s {
	case PenaltyPending, PenaltyApplied, PenaltyDisputed:
		return true
	case PenaltyWaived, PenaltyReversed:
		return false
	}
	return false
}

// InactivePenaltyStatuses are excluded from the duplicate-penalty guard.
var InactivePenaltyStatuses = []PenaltyStatus{PenaltyWaived, PenaltyReversed}
