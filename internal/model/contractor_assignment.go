package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContractorAssignment links a contractor to a quote request they were invited to bid on.
type ContractorAssignment struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID     uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_request_contractor" json:"request_id"`
	ContractorID  uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_request_contractor;index" json:"contractor_id"`
	Status        AssignmentStatus `gorm:"type:varchar(20);not null;default:'assigned';index" json:"status"`
	AssignedBy    *uuid.UUID       `gorm:"type:uuid" json:"assigned_by"`
	AssignedAt    time.Time        `gorm:"not null" json:"assigned_at"`
	ViewedAt      *time.Time       `json:"viewed_at"`
	RespondedAt   *time.Time       `json:"responded_at"`
	ResponseNotes string           `gorm:"type:text" json:"response_notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TableName keeps the table name aligned with the marketplace schema.
func (ContractorAssignment) TableName() string {
	return "contractor_quote_assignments"
}

func (a *ContractorAssignment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = AssignmentAssigned
	}
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now()
	}
	return nil
}
