// Package pricing holds the marketplace money arithmetic. Every function is pure and runs
// against an explicit PricingConfig snapshot.
package pricing

import (
	"solarquote/internal/model"
	"solarquote/pkg/apperror"

	"github.com/shopspring/decimal"
)

// Validation codes returned as business rule errors.
const (
	CodeInvalidBasePrice      = "INVALID_BASE_PRICE"
	CodeInvalidPricePerKwp    = "INVALID_PRICE_PER_KWP"
	CodePricePerKwpTooHigh    = "PRICE_PER_KWP_TOO_HIGH"
	CodeSystemSizeTooSmall    = "SYSTEM_SIZE_TOO_SMALL"
	CodeSystemSizeTooLarge    = "SYSTEM_SIZE_TOO_LARGE"
	CodePriceMismatch         = "PRICE_CALCULATION_MISMATCH"
	CodeOverpriceOutOfRange   = "OVERPRICE_PERCENT_OUT_OF_RANGE"
	CodeCommissionOutOfRange  = "COMMISSION_PERCENT_OUT_OF_RANGE"
	CodeVATOutOfRange         = "VAT_PERCENT_OUT_OF_RANGE"
	CodeInvalidMaxPricePerKwp = "INVALID_MAX_PRICE_PER_KWP"
	CodeInvalidSizeRange      = "INVALID_SYSTEM_SIZE_RANGE"
)

const moneyPlaces = 2

var (
	hundred = decimal.NewFromInt(100)

	// Tolerance is the accepted gap between base price and price per kWp x size.
	Tolerance = decimal.New(1, -2)

	// MaxPercent bounds every platform percentage.
	MaxPercent = decimal.NewFromInt(50)
)

// FinancialBreakdown is the full set of amounts derived from a contractor price.
type FinancialBreakdown struct {
	BasePrice         decimal.Decimal `json:"base_price"`
	PricePerKwp       decimal.Decimal `json:"price_per_kwp"`
	SystemSizeKwp     decimal.Decimal `json:"system_size_kwp"`
	OverpriceAmount   decimal.Decimal `json:"overprice_amount"`
	TotalUserPrice    decimal.Decimal `json:"total_user_price"`
	CommissionAmount  decimal.Decimal `json:"commission_amount"`
	ContractorNet     decimal.Decimal `json:"contractor_net"`
	PlatformRevenue   decimal.Decimal `json:"platform_revenue"`
	VATAmount         decimal.Decimal `json:"vat_amount"`
	TotalWithVAT      decimal.Decimal `json:"total_with_vat"`
	OverpricePercent  decimal.Decimal `json:"overprice_percent"`
	CommissionPercent decimal.Decimal `json:"commission_percent"`
	VATPercent        decimal.Decimal `json:"vat_percent"`
	ConfigVersion     int             `json:"config_version"`
}

// Round rounds a money amount to cents, halves away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// Validate checks a contractor price against the config without computing anything.
func Validate(basePrice, pricePerKwp, systemSizeKwp decimal.Decimal, cfg model.PricingConfig) error {
	if !basePrice.IsPositive() {
		return apperror.BusinessRule(CodeInvalidBasePrice, "base price must be greater than zero")
	}
	if !pricePerKwp.IsPositive() {
		return apperror.BusinessRule(CodeInvalidPricePerKwp, "price per kWp must be greater than zero")
	}
	if cfg.MaxPricePerKwp.IsPositive() && pricePerKwp.GreaterThan(cfg.MaxPricePerKwp) {
		return apperror.BusinessRule(CodePricePerKwpTooHigh,
			"price per kWp "+pricePerKwp.StringFixed(2)+" exceeds maximum "+cfg.MaxPricePerKwp.StringFixed(2))
	}
	if err := ValidateSystemSize(systemSizeKwp, cfg); err != nil {
		return err
	}

	expected := pricePerKwp.Mul(systemSizeKwp)
	if basePrice.Sub(expected).Abs().GreaterThan(Tolerance) {
		return apperror.BusinessRule(CodePriceMismatch,
			"base price "+basePrice.StringFixed(2)+" does not match price per kWp x system size "+expected.StringFixed(2))
	}
	return nil
}

// ValidateSystemSize checks a system size against the configured bounds.
func ValidateSystemSize(systemSizeKwp decimal.Decimal, cfg model.PricingConfig) error {
	if !systemSizeKwp.IsPositive() || systemSizeKwp.LessThan(cfg.MinSystemSizeKwp) {
		return apperror.BusinessRule(CodeSystemSizeTooSmall,
			"system size must be at least "+cfg.MinSystemSizeKwp.String()+" kWp")
	}
	if cfg.MaxSystemSizeKwp.IsPositive() && systemSizeKwp.GreaterThan(cfg.MaxSystemSizeKwp) {
		return apperror.BusinessRule(CodeSystemSizeTooLarge,
			"system size must not exceed "+cfg.MaxSystemSizeKwp.String()+" kWp")
	}
	return nil
}

// Calculate validates a contractor price and derives the platform amounts.
// Inputs are validated as given and then rounded to cents, matching the decimal(14,2) columns.
// Markup, commission and VAT are each rounded once from their exact products. Totals are
// composed from the rounded parts so that total_user_price == base + overprice and
// contractor_net == base - commission hold to the cent.
func Calculate(basePrice, pricePerKwp, systemSizeKwp decimal.Decimal, cfg model.PricingConfig) (FinancialBreakdown, error) {
	if err := Validate(basePrice, pricePerKwp, systemSizeKwp, cfg); err != nil {
		return FinancialBreakdown{}, err
	}
	basePrice = Round(basePrice)
	pricePerKwp = Round(pricePerKwp)

	overprice := Round(percentOf(basePrice, cfg.PlatformOverpricePercent))
	commission := Round(percentOf(basePrice, cfg.PlatformCommissionPercent))
	totalUser := basePrice.Add(overprice)
	vat := Round(percentOf(totalUser, cfg.VATPercent))

	return FinancialBreakdown{
		BasePrice:         basePrice,
		PricePerKwp:       pricePerKwp,
		SystemSizeKwp:     systemSizeKwp,
		OverpriceAmount:   overprice,
		TotalUserPrice:    totalUser,
		CommissionAmount:  commission,
		ContractorNet:     basePrice.Sub(commission),
		PlatformRevenue:   commission.Add(overprice),
		VATAmount:         vat,
		TotalWithVAT:      totalUser.Add(vat),
		OverpricePercent:  cfg.PlatformOverpricePercent,
		CommissionPercent: cfg.PlatformCommissionPercent,
		VATPercent:        cfg.VATPercent,
		ConfigVersion:     cfg.Version,
	}, nil
}

// Apply copies the breakdown onto a quote.
func (b FinancialBreakdown) Apply(q *model.ContractorQuote) {
	q.BasePrice = b.BasePrice
	q.PricePerKwp = b.PricePerKwp
	q.SystemSizeKwp = b.SystemSizeKwp
	q.OverpriceAmount = b.OverpriceAmount
	q.TotalUserPrice = b.TotalUserPrice
	q.CommissionAmount = b.CommissionAmount
	q.ContractorNet = b.ContractorNet
	q.PlatformRevenue = b.PlatformRevenue
	q.VATAmount = b.VATAmount
	q.TotalWithVAT = b.TotalWithVAT
	q.OverpricePercent = b.OverpricePercent
	q.CommissionPercent = b.CommissionPercent
	q.VATPercent = b.VATPercent
	q.PricingConfigVer = b.ConfigVersion
}

// Matches reports whether a stored quote carries the same derived amounts.
func (b FinancialBreakdown) Matches(q *model.ContractorQuote) bool {
	return b.OverpriceAmount.Equal(q.OverpriceAmount) &&
		b.TotalUserPrice.Equal(q.TotalUserPrice) &&
		b.CommissionAmount.Equal(q.CommissionAmount) &&
		b.ContractorNet.Equal(q.ContractorNet) &&
		b.VATAmount.Equal(q.VATAmount)
}

// ValidateConfig rejects a pricing configuration outside the allowed bounds.
func ValidateConfig(cfg model.PricingConfig) error {
	inRange := func(d decimal.Decimal) bool {
		return !d.IsNegative() && d.LessThanOrEqual(MaxPercent)
	}
	switch {
	case !inRange(cfg.PlatformOverpricePercent):
		return apperror.BusinessRule(CodeOverpriceOutOfRange, "platform overprice percent must be between 0 and 50")
	case !inRange(cfg.PlatformCommissionPercent):
		return apperror.BusinessRule(CodeCommissionOutOfRange, "platform commission percent must be between 0 and 50")
	case !inRange(cfg.VATPercent):
		return apperror.BusinessRule(CodeVATOutOfRange, "VAT percent must be between 0 and 50")
	case !cfg.MaxPricePerKwp.IsPositive():
		return apperror.BusinessRule(CodeInvalidMaxPricePerKwp, "max price per kWp must be greater than zero")
	case !cfg.MinSystemSizeKwp.IsPositive() || cfg.MaxSystemSizeKwp.LessThan(cfg.MinSystemSizeKwp):
		return apperror.BusinessRule(CodeInvalidSizeRange, "system size range must be positive and min <= max")
	}
	return nil
}
