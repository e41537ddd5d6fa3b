package pricing

import (
	"fmt"
	"strings"

	"solarquote/internal/model"
	"solarquote/pkg/apperror"

	"github.com/shopspring/decimal"
)

const (
	CodeLineItemNameRequired   = "LINE_ITEM_NAME_REQUIRED"
	CodeInvalidLineQuantity    = "INVALID_LINE_ITEM_QUANTITY"
	CodeInvalidLineUnitPrice   = "INVALID_LINE_ITEM_UNIT_PRICE"
	CodeLineItemsTotalMismatch = "LINE_ITEMS_TOTAL_MISMATCH"
)

// LineItemInput is a contractor-entered line before derivation.
type LineItemInput struct {
	ItemName    string          `json:"item_name" validate:"required,max=255"`
	Description string          `json:"description"`
	Unit        string          `json:"unit" validate:"max=30"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// LineItemTotals sums the derived line amounts of a quotation.
type LineItemTotals struct {
	Total      decimal.Decimal `json:"total"`
	Commission decimal.Decimal `json:"commission"`
	Overprice  decimal.Decimal `json:"overprice"`
	UserPrice  decimal.Decimal `json:"user_price"`
	VendorNet  decimal.Decimal `json:"vendor_net"`
}

// AggregateLineItems derives every line amount from quantity x unit price and the config
// rates. Each line value is rounded once. Totals sum the rounded line values so the lines
// always add up to the quotation totals.
func AggregateLineItems(inputs []LineItemInput, cfg model.PricingConfig) ([]model.QuotationLineItem, LineItemTotals, error) {
	items := make([]model.QuotationLineItem, 0, len(inputs))
	totals := LineItemTotals{
		Total:      decimal.Zero,
		Commission: decimal.Zero,
		Overprice:  decimal.Zero,
		UserPrice:  decimal.Zero,
		VendorNet:  decimal.Zero,
	}

	for i, in := range inputs {
		name := strings.TrimSpace(in.ItemName)
		if name == "" {
			return nil, LineItemTotals{}, apperror.BusinessRule(CodeLineItemNameRequired,
				fmt.Sprintf("line item %d: name is required", i+1))
		}
		if !in.Quantity.IsPositive() {
			return nil, LineItemTotals{}, apperror.BusinessRule(CodeInvalidLineQuantity,
				fmt.Sprintf("line item %d: quantity must be greater than zero", i+1))
		}
		if in.UnitPrice.IsNegative() {
			return nil, LineItemTotals{}, apperror.BusinessRule(CodeInvalidLineUnitPrice,
				fmt.Sprintf("line item %d: unit price must not be negative", i+1))
		}

		raw := in.Quantity.Mul(in.UnitPrice)
		total := Round(raw)
		commission := Round(percentOf(raw, cfg.PlatformCommissionPercent))
		overprice := Round(percentOf(raw, cfg.PlatformOverpricePercent))

		item := model.QuotationLineItem{
			Position:         i + 1,
			ItemName:         name,
			Description:      in.Description,
			Unit:             in.Unit,
			Quantity:         in.Quantity,
			UnitPrice:        in.UnitPrice,
			TotalPrice:       total,
			CommissionAmount: commission,
			OverpriceAmount:  overprice,
			UserPrice:        total.Add(overprice),
			VendorNetPrice:   total.Sub(commission),
		}
		items = append(items, item)

		totals.Total = totals.Total.Add(item.TotalPrice)
		totals.Commission = totals.Commission.Add(item.CommissionAmount)
		totals.Overprice = totals.Overprice.Add(item.OverpriceAmount)
		totals.UserPrice = totals.UserPrice.Add(item.UserPrice)
		totals.VendorNet = totals.VendorNet.Add(item.VendorNetPrice)
	}

	return items, totals, nil
}

// CheckLineItemsTotal verifies the summed line totals against the quote base price.
func CheckLineItemsTotal(totals LineItemTotals, basePrice decimal.Decimal) error {
	if totals.Total.Sub(basePrice).Abs().GreaterThan(Tolerance) {
		return apperror.BusinessRule(CodeLineItemsTotalMismatch,
			"line items total "+totals.Total.StringFixed(2)+" does not match base price "+basePrice.StringFixed(2))
	}
	return nil
}
