package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuotationLineItem is a priced component of a contractor quote. Every derived amount is computed
// from Quantity x UnitPrice and the rates active at submission.
type QuotationLineItem struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	QuotationID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Position         int             `gorm:"not null;default:0" json:"position"`
	ItemName         string          `gorm:"type:varchar(255);not null" json:"item_name"`
	Description      string          `gorm:"type:text" json:"description"`
	Unit             string          `gorm:"type:varchar(30)" json:"unit"`
	Quantity         decimal.Decimal `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"unit_price"`
	TotalPrice       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_price"`
	CommissionAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"platform_commission_amount"`
	OverpriceAmount  decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"platform_overprice_amount"`
	UserPrice        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"user_price"`
	VendorNetPrice   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"vendor_net_price"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (i *QuotationLineItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
