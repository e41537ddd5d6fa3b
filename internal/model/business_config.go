package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ConfigKeyPricingRules is the business_config row holding PricingConfig.
const ConfigKeyPricingRules = "pricing_rules"

// BusinessConfig stores one keyed JSON document per logical configuration.
// Updates replace the row in place and bump Version; history lives in the audit log.
type BusinessConfig struct {
	ConfigKey   string         `gorm:"type:varchar(100);primaryKey" json:"config_key"`
	ConfigValue datatypes.JSON `gorm:"type:jsonb;not null" json:"config_value"`
	Version     int            `gorm:"not null;default:1" json:"version"`
	UpdatedBy   *uuid.UUID     `gorm:"type:uuid" json:"updated_by"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (BusinessConfig) TableName() string {
	return "business_config"
}

// PricingConfig is the snapshot every financial calculation runs against.
type PricingConfig struct {
	MaxPricePerKwp            decimal.Decimal `json:"max_price_per_kwp"`
	PlatformOverpricePercent  decimal.Decimal `json:"platform_overprice_percent"`
	PlatformCommissionPercent decimal.Decimal `json:"platform_commission_percent"`
	VATPercent                decimal.Decimal `json:"vat_percent"`
	MinSystemSizeKwp          decimal.Decimal `json:"min_system_size_kwp"`
	MaxSystemSizeKwp          decimal.Decimal `json:"max_system_size_kwp"`
	Version                   int             `json:"version"`
}

// DefaultPricingConfig is used until an administrator stores a configuration.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		MaxPricePerKwp:            decimal.NewFromInt(5000),
		PlatformOverpricePercent:  decimal.NewFromInt(10),
		PlatformCommissionPercent: decimal.NewFromInt(15),
		VATPercent:                decimal.Zero,
		MinSystemSizeKwp:          decimal.NewFromInt(1),
		MaxSystemSizeKwp:          decimal.NewFromInt(1000),
	}
}
