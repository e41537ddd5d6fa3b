package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuoteRequest is a homeowner's invitation to bid on a solar installation.
type QuoteRequest struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	SystemSizeKwp      decimal.Decimal    `gorm:"type:decimal(10,2);not null" json:"system_size_kwp"`
	LocationAddress    string             `gorm:"type:text;not null" json:"location_address"`
	ServiceArea        string             `gorm:"type:varchar(100);index" json:"service_area"`
	PropertyDetails    datatypes.JSON     `gorm:"type:jsonb" json:"property_details"`
	ConsumptionProfile datatypes.JSON     `gorm:"type:jsonb" json:"consumption_profile"`
	Status             QuoteRequestStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	Notes              string             `gorm:"type:text" json:"notes"`
	SelectedQuoteID    *uuid.UUID         `gorm:"type:uuid" json:"selected_quote_id"`
	CancellationReason string             `gorm:"type:text" json:"cancellation_reason,omitempty"`
	CancelledAt        *time.Time         `json:"cancelled_at"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

func (r *QuoteRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = RequestPending
	}
	return nil
}

var requestTransitions = map[QuoteRequestStatus][]QuoteRequestStatus{
	RequestPending: {
		RequestContractorsSelected, RequestInProgress, RequestQuotesReceived,
		RequestQuoteSelected, RequestCancelled,
	},
	RequestContractorsSelected: {
		RequestContractorsSelected, RequestInProgress, RequestQuotesReceived, RequestRejected,
		RequestQuoteSelected, RequestCancelled,
	},
	RequestInProgress: {
		RequestInProgress, RequestQuotesReceived, RequestRejected, RequestQuoteSelected, RequestCancelled,
	},
	RequestQuotesReceived: {
		RequestQuotesReceived, RequestQuoteSelected, RequestCancelled,
	},
	RequestRejected: {
		RequestContractorsSelected, RequestInProgress, RequestQuoteSelected, RequestCancelled,
	},
	RequestQuoteSelected: {},
	RequestCancelled:     {},
}

// CanTransition reports whether a request may move from one status to another.
func CanTransition(from, to QuoteRequestStatus) bool {
	for _, next := range requestTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AssignmentTally counts the current assignment statuses of one request.
type AssignmentTally struct {
	Assigned int64 `json:"assigned"`
	Viewed   int64 `json:"viewed"`
	Accepted int64 `json:"accepted"`
	Rejected int64 `json:"rejected"`
}

func (t AssignmentTally) Total() int64 {
	return t.Assigned + t.Viewed + t.Accepted + t.Rejected
}

// DeriveStatusFromAssignments recomputes the request status from the full set of assignment
// statuses. It returns the current status and false when nothing changes.
func DeriveStatusFromAssignments(current QuoteRequestStatus, tally AssignmentTally) (QuoteRequestStatus, bool) {
	switch current {
	case RequestQuotesReceived, RequestQuoteSelected, RequestCancelled:
		return current, false
	case RequestPending, RequestContractorsSelected, RequestInProgress, RequestRejected:
	}

	var next QuoteRequestStatus
	switch {
	case tally.Accepted > 0:
		next = RequestInProgress
	case tally.Assigned == 0 && tally.Viewed == 0 && tally.Rejected > 0:
		next = RequestRejected
	default:
		return current, false
	}

	if next == current || !CanTransition(current, next) {
		return current, false
	}
	return next, true
}
