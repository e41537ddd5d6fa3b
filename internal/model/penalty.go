package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PenaltyRule is administrator-managed reference data describing how a penalty is priced.
type PenaltyRule struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PenaltyType       PenaltyType       `gorm:"type:varchar(40);not null;index" json:"penalty_type"`
	SeverityLevel     Severity          `gorm:"type:varchar(20);not null;index" json:"severity_level"`
	AmountCalculation AmountCalculation `gorm:"type:varchar(20);not null" json:"amount_calculation"`
	AmountValue       decimal.Decimal   `gorm:"type:decimal(14,2);not null" json:"amount_value"`
	MaximumAmount     *decimal.Decimal  `gorm:"type:decimal(14,2)" json:"maximum_amount"`
	Description       string            `gorm:"type:text" json:"description"`
	IsActive          bool              `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (r *PenaltyRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// PenaltyInstance is a concrete monetary penalty levied against a contractor.
// At most one active instance exists per (contractor, quote, penalty type).
type PenaltyInstance struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ContractorID uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_penalty_active_tuple,where:status <> 'waived' AND status <> 'reversed'" json:"contractor_id"`
	QuoteID      uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_penalty_active_tuple,where:status <> 'waived' AND status <> 'reversed'" json:"quote_id"`
	RuleID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"rule_id"`
	Rule         *PenaltyRule    `gorm:"foreignKey:RuleID" json:"rule,omitempty"`
	PenaltyType  PenaltyType     `gorm:"type:varchar(40);not null;uniqueIndex:idx_penalty_active_tuple,where:status <> 'waived' AND status <> 'reversed'" json:"penalty_type"`
	Severity     Severity        `gorm:"type:varchar(20);not null" json:"severity"`
	Amount       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	DaysOverdue  int             `gorm:"not null;default:0" json:"days_overdue"`
	Description  string          `gorm:"type:text" json:"description"`
	Status       PenaltyStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	AppliedBy    *uuid.UUID      `gorm:"type:uuid" json:"applied_by"` // nil when raised by the SLA scheduler
	IsAutomatic  bool            `gorm:"not null;default:false" json:"is_automatic"`

	WalletTransactionID string     `gorm:"type:varchar(100)" json:"wallet_transaction_id,omitempty"`
	DebitAttempts       int        `gorm:"not null;default:0" json:"debit_attempts"`
	LastDebitError      string     `gorm:"type:text" json:"last_debit_error,omitempty"`
	AppliedAt           *time.Time `json:"applied_at"`

	DisputeReason string     `gorm:"type:text" json:"dispute_reason,omitempty"`
	DisputedAt    *time.Time `json:"disputed_at"`
	WaivedBy      *uuid.UUID `gorm:"type:uuid" json:"waived_by"`
	WaiveReason   string     `gorm:"type:text" json:"waive_reason,omitempty"`
	WaivedAt      *time.Time `json:"waived_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *PenaltyInstance) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = PenaltyPending
	}
	return nil
}
