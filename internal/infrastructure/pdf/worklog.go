// Package pdf renders monthly work log reports to PDF.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"milldesk/internal/domain/reports"
)

const (
	pageMargin  = 12.0
	rowHeight   = 7.0
	headerGray  = 230
	stripeGray  = 245
	dateLayout  = "02-01-2006"
	fontRegular = "Helvetica"
)

// column widths for the entry table, in mm (A4 portrait, 186mm usable).
var colWidths = [5]float64{16, 28, 30, 62, 50}

var colTitles = [5]string{"S.No", "Date", "Machine", "Quality", "Karigar / Taar"}

// Renderer lays out a reports.MonthlyReport as a PDF document.
type Renderer struct{}

// NewRenderer creates a report renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for a monthly report. The document
// carries the company header and quality legend on the first page, one
// fixed-size entry table per report page, and the summary block after
// the last table.
func (r *Renderer) Render(report *reports.MonthlyReport) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)

	for i, page := range report.Pages {
		doc.AddPage()
		if i == 0 {
			r.renderHeader(doc, report)
		} else {
			r.renderContinuationHeader(doc, report, page.Number)
		}
		r.renderTable(doc, page)
		if i == len(report.Pages)-1 {
			r.renderSummary(doc, &report.Summary)
		}
		r.renderFooter(doc, page.Number, report.PageCount())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Renderer) renderHeader(doc *gofpdf.Fpdf, report *reports.MonthlyReport) {
	doc.SetFont(fontRegular, "B", 16)
	doc.CellFormat(0, 9, report.CompanyName, "", 1, "C", false, 0, "")

	doc.SetFont(fontRegular, "", 11)
	doc.CellFormat(0, 6, "Work Log Report - "+report.MonthLabel, "", 1, "C", false, 0, "")
	doc.Ln(3)

	if len(report.Legend) > 0 {
		doc.SetFont(fontRegular, "B", 9)
		doc.CellFormat(0, 5, "Qualities", "", 1, "L", false, 0, "")
		doc.SetFont(fontRegular, "", 9)
		for _, row := range report.Legend {
			doc.CellFormat(110, 5, row.Name, "", 0, "L", false, 0, "")
			doc.CellFormat(0, 5, "Rate: "+row.ReceivableRate, "", 1, "L", false, 0, "")
		}
		doc.Ln(3)
	}
}

func (r *Renderer) renderContinuationHeader(doc *gofpdf.Fpdf, report *reports.MonthlyReport, pageNumber int) {
	doc.SetFont(fontRegular, "B", 12)
	doc.CellFormat(0, 7, report.CompanyName, "", 1, "C", false, 0, "")
	doc.SetFont(fontRegular, "", 9)
	doc.CellFormat(0, 5, fmt.Sprintf("%s (continued, page %d)", report.MonthLabel, pageNumber), "", 1, "C", false, 0, "")
	doc.Ln(3)
}

func (r *Renderer) renderTable(doc *gofpdf.Fpdf, page reports.Page) {
	doc.SetFont(fontRegular, "B", 9)
	doc.SetFillColor(headerGray, headerGray, headerGray)
	for i, title := range colTitles {
		doc.CellFormat(colWidths[i], rowHeight, title, "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont(fontRegular, "", 9)
	for i, row := range page.Rows {
		fill := i%2 == 1
		doc.SetFillColor(stripeGray, stripeGray, stripeGray)
		doc.CellFormat(colWidths[0], rowHeight, fmt.Sprintf("%d", row.Serial), "1", 0, "C", fill, 0, "")
		doc.CellFormat(colWidths[1], rowHeight, row.Date.Format(dateLayout), "1", 0, "C", fill, 0, "")
		doc.CellFormat(colWidths[2], rowHeight, row.MachineNo, "1", 0, "C", fill, 0, "")
		doc.CellFormat(colWidths[3], rowHeight, row.QualityName, "1", 0, "L", fill, 0, "")
		doc.CellFormat(colWidths[4], rowHeight, row.KarigarName+" / "+row.Taar, "1", 0, "L", fill, 0, "")
		doc.Ln(-1)
	}
}

func (r *Renderer) renderSummary(doc *gofpdf.Fpdf, summary *reports.Summary) {
	doc.Ln(5)
	doc.SetFont(fontRegular, "B", 10)
	doc.CellFormat(0, 6, "Summary", "", 1, "L", false, 0, "")

	doc.SetFont(fontRegular, "", 9)
	doc.CellFormat(60, 5, fmt.Sprintf("Total entries: %d", summary.TotalEntries), "", 0, "L", false, 0, "")
	doc.CellFormat(60, 5, fmt.Sprintf("Total taar: %.2f", summary.TotalTaar), "", 0, "L", false, 0, "")
	doc.CellFormat(0, 5, fmt.Sprintf("Total amount: %.2f", summary.TotalAmount), "", 1, "L", false, 0, "")
	doc.Ln(2)

	if len(summary.Breakdown) == 0 {
		return
	}

	doc.SetFont(fontRegular, "B", 9)
	doc.SetFillColor(headerGray, headerGray, headerGray)
	doc.CellFormat(86, rowHeight, "Quality", "1", 0, "L", true, 0, "")
	doc.CellFormat(40, rowHeight, "Entries", "1", 0, "C", true, 0, "")
	doc.CellFormat(60, rowHeight, "Amount", "1", 1, "R", true, 0, "")

	doc.SetFont(fontRegular, "", 9)
	for _, row := range summary.Breakdown {
		doc.CellFormat(86, rowHeight, row.Name, "1", 0, "L", false, 0, "")
		doc.CellFormat(40, rowHeight, fmt.Sprintf("%d", row.Count), "1", 0, "C", false, 0, "")
		doc.CellFormat(60, rowHeight, fmt.Sprintf("%.2f", row.Amount), "1", 1, "R", false, 0, "")
	}
}

func (r *Renderer) renderFooter(doc *gofpdf.Fpdf, pageNumber, pageCount int) {
	doc.SetY(-pageMargin - 5)
	doc.SetFont(fontRegular, "I", 8)
	doc.CellFormat(0, 5, fmt.Sprintf("Page %d of %d", pageNumber, pageCount), "", 0, "C", false, 0, "")
}
