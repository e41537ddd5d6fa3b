package service

import (
	"context"
	"time"

	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"

	"github.com/google/uuid"
)

// Violation is an overdue installation found by the SLA scan.
type Violation struct {
	QuoteID      uuid.UUID      `json:"quote_id"`
	ContractorID uuid.UUID      `json:"contractor_id"`
	RequestID    uuid.UUID      `json:"request_id"`
	DueDate      time.Time      `json:"due_date"`
	DaysOverdue  int            `json:"days_overdue"`
	Severity     model.Severity `json:"severity"`
}

// SLADetector finds selected quotes past their installation deadline. It has no side effects.
type SLADetector interface {
	Detect(ctx context.Context, asOf time.Time) ([]Violation, error)
}

type slaDetector struct {
	quotes    repository.ContractorQuoteRepository
	penalties repository.PenaltyRepository
}

func NewSLADetector(quotes repository.ContractorQuoteRepository, penalties repository.PenaltyRepository) SLADetector {
	return &slaDetector{quotes: quotes, penalties: penalties}
}

// DaysOverdue counts whole calendar days (UTC) between the due date and asOf. It is zero or
// negative while the deadline has not passed.
func DaysOverdue(due, asOf time.Time) int {
	dueDay := due.UTC().Truncate(24 * time.Hour)
	asOfDay := asOf.UTC().Truncate(24 * time.Hour)
	return int(asOfDay.Sub(dueDay).Hours() / 24)
}

func (d *slaDetector) Detect(ctx context.Context, asOf time.Time) ([]Violation, error) {
	quotes, err := d.quotes.ListSelectedApproved(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	candidates := make([]Violation, 0)
	ids := make([]uuid.UUID, 0)
	for i := range quotes {
		q := &quotes[i]
		due := q.InstallationDueDate()
		days := DaysOverdue(due, asOf)
		if days < 1 {
			continue
		}
		candidates = append(candidates, Violation{
			QuoteID:      q.ID,
			ContractorID: q.ContractorID,
			RequestID:    q.RequestID,
			DueDate:      due,
			DaysOverdue:  days,
			Severity:     model.SeverityForDaysOverdue(days),
		})
		ids = append(ids, q.ID)
	}
	if len(candidates) == 0 {
		return candidates, nil
	}

	penalized, err := d.penalties.ActiveQuoteIDs(ctx, model.PenaltyLateInstallation, ids)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]Violation, 0, len(candidates))
	for _, v := range candidates {
		if penalized[v.QuoteID] {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
