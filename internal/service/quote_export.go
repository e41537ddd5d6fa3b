package service

import (
	"context"
	"fmt"

	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	exportSheetName = "Quotes"
	exportMaxRows   = 5000
)

var exportHeaders = []string{
	"Quote ID", "Request ID", "Contractor ID", "Admin Status", "Selected",
	"Base Price", "Price per kWp", "System kWp", "Overprice", "Total User Price",
	"Commission", "Contractor Net", "Platform Revenue", "VAT", "Total with VAT",
	"Timeline Days", "Valid Until", "Created At",
}

// ExportQuotes renders the filtered quotes as an xlsx workbook.
func (s *adminReviewService) ExportQuotes(ctx context.Context, filter repository.QuoteFilter) ([]byte, error) {
	quotes, err := s.quotes.ListAll(ctx, filter, exportMaxRows)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	out, err := renderQuotesWorkbook(quotes)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}

func renderQuotesWorkbook(quotes []model.ContractorQuote) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if err := f.SetColWidth(exportSheetName, "A", "C", 38); err != nil {
		return nil, fmt.Errorf("set id column width: %w", err)
	}
	if err := f.SetColWidth(exportSheetName, "D", "R", 16); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(exportSheetName, cell, h); err != nil {
			return nil, fmt.Errorf("set header %s: %w", h, err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(exportSheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, q := range quotes {
		row := i + 2
		values := []interface{}{
			q.ID.String(),
			q.RequestID.String(),
			q.ContractorID.String(),
			string(q.AdminStatus),
			q.IsSelected,
			q.BasePrice.InexactFloat64(),
			q.PricePerKwp.InexactFloat64(),
			q.SystemSizeKwp.InexactFloat64(),
			q.OverpriceAmount.InexactFloat64(),
			q.TotalUserPrice.InexactFloat64(),
			q.CommissionAmount.InexactFloat64(),
			q.ContractorNet.InexactFloat64(),
			q.PlatformRevenue.InexactFloat64(),
			q.VATAmount.InexactFloat64(),
			q.TotalWithVAT.InexactFloat64(),
			q.InstallationTimelineDays,
			q.ValidUntil.Format("2006-01-02"),
			q.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellValue(exportSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		from, _ := excelize.CoordinatesToCellName(6, row)
		to, _ := excelize.CoordinatesToCellName(15, row)
		if err := f.SetCellStyle(exportSheetName, from, to, moneyStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", row, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
