package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActionCreateQuoteRequest  = "CREATE_QUOTE_REQUEST"
	ActionCancelQuoteRequest  = "CANCEL_QUOTE_REQUEST"
	ActionAssignContractors   = "ASSIGN_CONTRACTORS"
	ActionInviteContractors   = "INVITE_CONTRACTORS"
	ActionRespondAssignment   = "RESPOND_ASSIGNMENT"
	ActionRequestStatusChange = "REQUEST_STATUS_CHANGE"
	ActionSubmitQuote         = "SUBMIT_QUOTE"
	ActionApproveQuote        = "APPROVE_QUOTE"
	ActionRejectQuote         = "REJECT_QUOTE"
	ActionSelectQuote         = "SELECT_QUOTE"
	ActionCompareQuotes       = "COMPARE_QUOTES"
	ActionUpdatePricingConfig = "UPDATE_PRICING_CONFIG"
	ActionCreatePenaltyRule   = "CREATE_PENALTY_RULE"
	ActionUpdatePenaltyRule   = "UPDATE_PENALTY_RULE"
	ActionApplyPenalty        = "APPLY_PENALTY"
	ActionPenaltyDebitApplied = "PENALTY_DEBIT_APPLIED"
	ActionDisputePenalty      = "DISPUTE_PENALTY"
	ActionWaivePenalty        = "WAIVE_PENALTY"
)

// AuditLog tracks Who, What, and When for every state-changing marketplace action
type AuditLog struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorID    *uuid.UUID     `gorm:"type:uuid;index" json:"actor_id"` // nil for scheduler-driven actions
	ActorRole  string         `gorm:"type:varchar(20)" json:"actor_role"`
	Action     string         `gorm:"type:varchar(50);not null;index" json:"action"`
	EntityType string         `gorm:"type:varchar(50);index" json:"entity_type"`
	EntityID   string         `gorm:"type:varchar(50);index" json:"entity_id"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// QuoteComparison records a requester comparing approved quotes side by side.
type QuoteComparison struct {
	ID              uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                      `gorm:"type:uuid;not null;index" json:"user_id"`
	RequestID       uuid.UUID                      `gorm:"type:uuid;not null;index" json:"request_id"`
	QuoteIDs        datatypes.JSONSlice[uuid.UUID] `gorm:"type:jsonb;not null" json:"quote_ids"`
	MinPrice        decimal.Decimal                `gorm:"type:decimal(14,2);not null" json:"min_price"`
	MaxPrice        decimal.Decimal                `gorm:"type:decimal(14,2);not null" json:"max_price"`
	AvgPrice        decimal.Decimal                `gorm:"type:decimal(14,2);not null" json:"avg_price"`
	CheapestQuoteID *uuid.UUID                     `gorm:"type:uuid" json:"cheapest_quote_id"`
	FastestQuoteID  *uuid.UUID                     `gorm:"type:uuid" json:"fastest_quote_id"`
	CreatedAt       time.Time                      `json:"created_at"`
}

func (c *QuoteComparison) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
