// Package integration holds the contracts of the services this engine consumes but does not
// own: identity lookup, the contractor wallet and marketplace notifications.
package integration

//go:generate mockgen -source=collaborators.go -destination=mocks/collaborators_mock.go -package=mocks

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned by an identity lookup for an unknown id.
var ErrNotFound = errors.New("identity not found")

// ContractorInfo is the contractor profile used to enrich admin views.
type ContractorInfo struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	VerificationLevel string    `json:"verification_level"`
	IsPlaceholder     bool      `json:"is_placeholder"`
}

// UserInfo is the requester profile used to enrich admin views.
type UserInfo struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	IsPlaceholder bool      `json:"is_placeholder"`
}

type IdentityClient interface {
	GetContractorInfo(ctx context.Context, contractorID uuid.UUID) (ContractorInfo, error)
	GetUserInfo(ctx context.Context, userID uuid.UUID) (UserInfo, error)
}

// PenaltyDebit asks the wallet to charge a contractor for a penalty.
type PenaltyDebit struct {
	ContractorID uuid.UUID       `json:"contractor_id"`
	PenaltyID    uuid.UUID       `json:"penalty_id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
}

type WalletClient interface {
	// ApplyPenaltyDebit returns the wallet transaction id on success.
	ApplyPenaltyDebit(ctx context.Context, debit PenaltyDebit) (string, error)
}

// Event types published to connected clients.
const (
	EventContractorsAssigned = "contractors_assigned"
	EventQuoteSubmitted      = "quote_submitted"
	EventQuoteReviewed       = "quote_reviewed"
	EventQuoteSelected       = "quote_selected"
	EventPenaltyApplied      = "penalty_applied"
)

// Event is a marketplace notification. Admin connections receive every event, other connections
// only the events listing them as recipients.
type Event struct {
	Type       string      `json:"type"`
	Recipients []uuid.UUID `json:"recipients,omitempty"`
	Payload    interface{} `json:"payload"`
	OccurredAt time.Time   `json:"occurred_at"`
}

type Notifier interface {
	NotifyContractorsAssigned(ctx context.Context, requestID uuid.UUID, contractorIDs []uuid.UUID) error
	Publish(ctx context.Context, event Event) error
}

// ResolveContractor never fails: lookup errors degrade to a flagged placeholder.
func ResolveContractor(ctx context.Context, client IdentityClient, contractorID uuid.UUID) ContractorInfo {
	if client != nil {
		info, err := client.GetContractorInfo(ctx, contractorID)
		if err == nil {
			return info
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[IDENTITY] contractor %s lookup failed: %v", contractorID, err)
		}
	}
	return ContractorInfo{ID: contractorID, Name: "Unknown contractor", VerificationLevel: "unknown", IsPlaceholder: true}
}

// ResolveUser never fails: lookup errors degrade to a flagged placeholder.
func ResolveUser(ctx context.Context, client IdentityClient, userID uuid.UUID) UserInfo {
	if client != nil {
		info, err := client.GetUserInfo(ctx, userID)
		if err == nil {
			return info
		}
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[IDENTITY] user %s lookup failed: %v", userID, err)
		}
	}
	return UserInfo{ID: userID, Name: "Unknown user", IsPlaceholder: true}
}

// NopNotifier discards every event.
type NopNotifier struct{}

func (NopNotifier) NotifyContractorsAssigned(context.Context, uuid.UUID, []uuid.UUID) error {
	return nil
}

func (NopNotifier) Publish(context.Context, Event) error {
	return nil
}
