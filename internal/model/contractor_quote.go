package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContractorQuote is a contractor's priced bid against a QuoteRequest.
// Exactly one quote exists per (request, contractor) and at most one quote per request is selected.
type ContractorQuote struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	RequestID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_quote_request_contractor;uniqueIndex:idx_quote_single_selection,where:is_selected = true" json:"request_id"`
	Request      *QuoteRequest `gorm:"foreignKey:RequestID" json:"-"`
	ContractorID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_quote_request_contractor;index" json:"contractor_id"`

	// Contractor-entered pricing
	BasePrice     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"base_price"`
	PricePerKwp   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price_per_kwp"`
	SystemSizeKwp decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"system_size_kwp"`

	// Derived by the pricing calculator, refreshed on approval
	OverpriceAmount    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"overprice_amount"`
	TotalUserPrice     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_user_price"`
	CommissionAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"commission_amount"`
	ContractorNet      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"contractor_net"`
	PlatformRevenue    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"platform_revenue"`
	VATAmount          decimal.Decimal `gorm:"column:vat_amount;type:decimal(14,2);not null;default:0" json:"vat_amount"`
	TotalWithVAT       decimal.Decimal `gorm:"column:total_with_vat;type:decimal(14,2);not null;default:0" json:"total_with_vat"`
	OverpricePercent   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"overprice_percent"`
	CommissionPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"commission_percent"`
	VATPercent         decimal.Decimal `gorm:"column:vat_percent;type:decimal(5,2);not null;default:0" json:"vat_percent"`
	LineItemsTotal     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"line_items_total"`
	PricingConfigVer   int             `gorm:"column:pricing_config_version;not null;default:0" json:"pricing_config_version"`
	PricingCalculateAt *time.Time      `gorm:"column:pricing_calculated_at" json:"pricing_calculated_at"`

	SystemSpecs              datatypes.JSON `gorm:"type:jsonb" json:"system_specs"`
	InstallationTimelineDays int            `gorm:"not null" json:"installation_timeline_days"`
	ValidUntil               time.Time      `gorm:"not null" json:"valid_until"`
	Notes                    string         `gorm:"type:text" json:"notes"`

	AdminStatus     AdminStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"admin_status"`
	ReviewedBy      *uuid.UUID  `gorm:"type:uuid" json:"reviewed_by"`
	ReviewedAt      *time.Time  `json:"reviewed_at"`
	AdminNotes      string      `gorm:"type:text" json:"admin_notes"`
	RejectionReason string      `gorm:"type:text" json:"rejection_reason"`

	IsSelected      bool       `gorm:"not null;default:false;index" json:"is_selected"`
	SelectedAt      *time.Time `json:"selected_at"`
	SelectionReason string     `gorm:"type:text" json:"selection_reason"`

	LineItems []QuotationLineItem `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE" json:"line_items,omitempty"`
	CreatedAt time.Time           `gorm:"index" json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

func (q *ContractorQuote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	if q.AdminStatus == "" {
		q.AdminStatus = AdminPending
	}
	return nil
}

// InstallationDueDate is the SLA deadline of a selected quote.
func (q *ContractorQuote) InstallationDueDate() time.Time {
	return q.CreatedAt.AddDate(0, 0, q.InstallationTimelineDays)
}

// IsExpired reports whether the quote's validity window has passed.
func (q *ContractorQuote) IsExpired(now time.Time) bool {
	return !q.ValidUntil.IsZero() && now.After(q.ValidUntil)
}

// SystemSpecs is the structured payload stored in ContractorQuote.SystemSpecs.
type SystemSpecs struct {
	PanelBrand      string            `json:"panel_brand,omitempty"`
	PanelModel      string            `json:"panel_model,omitempty"`
	PanelCount      int               `json:"panel_count,omitempty"`
	PanelWattage    int               `json:"panel_wattage,omitempty"`
	InverterBrand   string            `json:"inverter_brand,omitempty"`
	InverterModel   string            `json:"inverter_model,omitempty"`
	BatteryIncluded bool              `json:"battery_included"`
	BatteryModel    string            `json:"battery_model,omitempty"`
	WarrantyYears   int               `json:"warranty_years,omitempty"`
	Extras          map[string]string `json:"extras,omitempty"`
}
