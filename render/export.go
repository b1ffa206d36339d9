package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/warp/statement-engine/billing"
)

// pdfCreationDate is stamped into every PDF so exports do not depend on the
// wall clock.
var pdfCreationDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// =============================================================================
// PDF
// =============================================================================

// PDFExporter renders a one-page A4 statement.
type PDFExporter struct{}

func (PDFExporter) Export(result *billing.StatementResult) ([]byte, error) {
	if result == nil {
		return nil, ErrNilStatement
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCreationDate(pdfCreationDate)
	pdf.SetCatalogSort(true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "", 12)
	pdf.AddPage()
	pdf.Cell(0, 8, tr(fmt.Sprintf("Statement for %s", result.Customer)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(80, 6, "Play", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 6, "Seats", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 6, "Amount", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 6, "Credits", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, item := range result.LineItems {
		pdf.CellFormat(80, 6, tr(item.PlayName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", item.Audience), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, FormatCurrency(item.Amount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%d", item.Credits), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.Cell(0, 6, fmt.Sprintf("Amount owed is %s", FormatCurrency(result.TotalAmount)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("You earned %s", Pluralize(result.TotalCredits, "credit")))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// XLSX
// =============================================================================

const (
	SheetSummary = "summary"
	SheetItems   = "items"
)

type xlsxCell struct {
	sheet string
	cell  string
	value interface{}
}

// XLSXExporter writes a workbook with a summary sheet and one row per line
// item. Amounts are stored as two-digit decimal strings, never floats.
type XLSXExporter struct{}

func (XLSXExporter) Export(result *billing.StatementResult) ([]byte, error) {
	if result == nil {
		return nil, ErrNilStatement
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetItems); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	cells := []xlsxCell{
		{SheetSummary, "A1", "Statement"},
		{SheetSummary, "A3", "Customer"},
		{SheetSummary, "B3", result.Customer},
		{SheetSummary, "A4", "Total Amount"},
		{SheetSummary, "B4", FormatAmount(result.TotalAmount)},
		{SheetSummary, "A5", "Total Credits"},
		{SheetSummary, "B5", result.TotalCredits},
		{SheetItems, "A1", "Play"},
		{SheetItems, "B1", "Audience"},
		{SheetItems, "C1", "Amount"},
		{SheetItems, "D1", "Credits"},
	}
	for i, item := range result.LineItems {
		row := i + 2
		cells = append(cells,
			xlsxCell{SheetItems, fmt.Sprintf("A%d", row), item.PlayName},
			xlsxCell{SheetItems, fmt.Sprintf("B%d", row), item.Audience},
			xlsxCell{SheetItems, fmt.Sprintf("C%d", row), FormatAmount(item.Amount)},
			xlsxCell{SheetItems, fmt.Sprintf("D%d", row), item.Credits},
		)
	}

	for _, c := range cells {
		if err := f.SetCellValue(c.sheet, c.cell, c.value); err != nil {
			return nil, fmt.Errorf("set %s!%s: %w", c.sheet, c.cell, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
