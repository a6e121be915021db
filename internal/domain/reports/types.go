// Package reports provides work-log aggregation and monthly report
// generation: totals, per-quality breakdowns, and the paginated data
// model a PDF renderer lays out.
package reports

import (
	"time"

	"milldesk/internal/core/id"
)

// PageSize is the fixed number of report rows per page.
const PageSize = 25

// Totals holds report-wide sums over a set of work log entries.
// Values are floating-point sums of the decimal rate strings. Display
// rounding (2 decimal places) happens at render time only.
type Totals struct {
	// Receivable is the sum of receivable rates over all entries.
	Receivable float64 `json:"receivable"`

	// Payable is the sum of payable rates over all entries.
	Payable float64 `json:"payable"`

	// Profit equals Receivable minus Payable.
	Profit float64 `json:"profit"`

	// Taar is the sum of thread counts. Missing taar counts as 0.
	Taar float64 `json:"taar"`
}

// BreakdownRow is one quality's share of an aggregation. Only
// qualities with at least one entry appear.
type BreakdownRow struct {
	QualityID id.ID  `json:"qualityId"`
	Name      string `json:"name"`

	// Count is the number of entries referencing the quality.
	Count int `json:"count"`

	// Amount equals Count times the quality's receivable rate.
	Amount float64 `json:"amount"`
}

// Aggregation is the result of summing a list of work log entries.
type Aggregation struct {
	Totals    Totals         `json:"totals"`
	Breakdown []BreakdownRow `json:"breakdown"`

	// EntryCount is the number of entries aggregated.
	EntryCount int `json:"entryCount"`
}

// --- Monthly report data model ---

// Row is one rendered report line.
type Row struct {
	// Serial is the running number, continuous across pages starting at 1.
	Serial int `json:"serial"`

	Date        time.Time `json:"date"`
	MachineNo   string    `json:"machineNo"`
	QualityName string    `json:"qualityName"`
	KarigarName string    `json:"karigarName"`
	Taar        string    `json:"taar"`
}

// Page holds up to PageSize rows.
type Page struct {
	Number int   `json:"number"`
	Rows   []Row `json:"rows"`
}

// LegendRow lists one of the company's known qualities with its
// receivable rate, shown in the report header regardless of whether
// the quality appears in the month's entries.
type LegendRow struct {
	Name           string `json:"name"`
	ReceivableRate string `json:"receivableRate"`
}

// Summary is attached to the final page of a report.
type Summary struct {
	TotalEntries int            `json:"totalEntries"`
	TotalTaar    float64        `json:"totalTaar"`
	TotalAmount  float64        `json:"totalAmount"`
	Breakdown    []BreakdownRow `json:"breakdown"`
}

// MonthlyReport is the structured report model consumed by the PDF
// renderer.
type MonthlyReport struct {
	CompanyName string `json:"companyName"`

	// MonthLabel is the human-readable period, e.g. "March 2026".
	MonthLabel string `json:"monthLabel"`

	Legend  []LegendRow `json:"legend"`
	Pages   []Page      `json:"pages"`
	Summary Summary     `json:"summary"`

	// Filename is the suggested download name, derived from the
	// company name and month label.
	Filename string `json:"filename"`
}

// PageCount returns the number of pages in the report.
func (r *MonthlyReport) PageCount() int {
	return len(r.Pages)
}

// DashboardStats backs the landing page cards.
type DashboardStats struct {
	TotalCompanies int64 `json:"totalCompanies"`

	// TotalQualities counts distinct quality names across the user's companies.
	TotalQualities int64 `json:"totalQualities"`

	// MonthEntries counts the user's work log entries in the current month.
	MonthEntries int64 `json:"monthEntries"`
}

// CompanyStats backs the per-company stats cards for one month.
type CompanyStats struct {
	CompanyID id.ID  `json:"companyId"`
	Month     string `json:"month"`

	Totals    Totals         `json:"totals"`
	Breakdown []BreakdownRow `json:"breakdown"`

	EntryCount int `json:"entryCount"`
}
