package pricing

import (
	"testing"

	"solarquote/pkg/apperror"

	"github.com/shopspring/decimal"
)

func TestAggregateLineItems(t *testing.T) {
	inputs := []LineItemInput{
		{ItemName: "Panels", Unit: "pcs", Quantity: d("25"), UnitPrice: d("600")},
		{ItemName: "Inverter", Unit: "pcs", Quantity: d("1"), UnitPrice: d("3500")},
		{ItemName: "Labour", Unit: "h", Quantity: d("12.5"), UnitPrice: d("40")},
	}

	items, totals, err := AggregateLineItems(inputs, testConfig())
	if err != nil {
		t.Fatalf("AggregateLineItems: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}

	panels := items[0]
	if panels.Position != 1 || !panels.TotalPrice.Equal(d("15000")) {
		t.Fatalf("panels line = %+v", panels)
	}
	if !panels.CommissionAmount.Equal(d("2250")) || !panels.OverpriceAmount.Equal(d("1500")) {
		t.Fatalf("panels commission/overprice = %s/%s", panels.CommissionAmount, panels.OverpriceAmount)
	}
	if !panels.UserPrice.Equal(d("16500")) || !panels.VendorNetPrice.Equal(d("12750")) {
		t.Fatalf("panels user/vendor = %s/%s", panels.UserPrice, panels.VendorNetPrice)
	}

	if got := totals.Total.StringFixed(2); got != "19000.00" {
		t.Errorf("total = %s, want 19000.00", got)
	}
	if !totals.UserPrice.Equal(totals.Total.Add(totals.Overprice)) {
		t.Errorf("user price %s != total %s + overprice %s", totals.UserPrice, totals.Total, totals.Overprice)
	}
	if !totals.VendorNet.Equal(totals.Total.Sub(totals.Commission)) {
		t.Errorf("vendor net %s != total %s - commission %s", totals.VendorNet, totals.Total, totals.Commission)
	}

	if err := CheckLineItemsTotal(totals, d("19000")); err != nil {
		t.Errorf("matching base price rejected: %v", err)
	}
	if err := CheckLineItemsTotal(totals, d("20000")); !apperror.HasCode(err, CodeLineItemsTotalMismatch) {
		t.Errorf("expected %s, got %v", CodeLineItemsTotalMismatch, err)
	}
}

func TestAggregateLineItemsRejectsInvalidLines(t *testing.T) {
	tests := []struct {
		name string
		in   LineItemInput
		code string
	}{
		{"missing name", LineItemInput{ItemName: "  ", Quantity: d("1"), UnitPrice: d("1")}, CodeLineItemNameRequired},
		{"zero quantity", LineItemInput{ItemName: "x", Quantity: decimal.Zero, UnitPrice: d("1")}, CodeInvalidLineQuantity},
		{"negative price", LineItemInput{ItemName: "x", Quantity: d("1"), UnitPrice: d("-5")}, CodeInvalidLineUnitPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := AggregateLineItems([]LineItemInput{tt.in}, testConfig())
			if !apperror.HasCode(err, tt.code) {
				t.Fatalf("got %v, want %s", err, tt.code)
			}
		})
	}
}

func TestAggregateNoLineItems(t *testing.T) {
	items, totals, err := AggregateLineItems(nil, testConfig())
	if err != nil || len(items) != 0 || !totals.Total.IsZero() {
		t.Fatalf("empty input: items=%v totals=%+v err=%v", items, totals, err)
	}
}
