package reports

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"milldesk/internal/core/apperror"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/worklog"
)

var nonAlphanumericRE = regexp.MustCompile(`[^a-zA-Z0-9]`)

// MonthLabel returns the human-readable period label, e.g. "March 2026".
func MonthLabel(month time.Time) string {
	return month.Format("January 2006")
}

// ReportFilename derives the download name from the company name and
// month label: non-alphanumeric characters in the name become "_",
// spaces in the label become "_".
func ReportFilename(companyName string, month time.Time) string {
	name := nonAlphanumericRE.ReplaceAllString(companyName, "_")
	label := strings.ReplaceAll(MonthLabel(month), " ", "_")
	return name + "_WorkLog_" + label + ".pdf"
}

// BuildMonthlyReport turns a company's work log entries into the
// paginated report model for one calendar month.
//
// Entries outside the month are dropped, the rest are sorted by date
// ascending (stable, so equal dates keep their relative order), split
// into pages of PageSize rows with a serial number running across
// pages, and summed into the report summary. An empty month yields an
// empty-report error and no document.
func BuildMonthlyReport(c *company.Company, entries []*worklog.Entry, month time.Time) (*MonthlyReport, error) {
	from, to := worklog.MonthBounds(month)

	filtered := make([]*worklog.Entry, 0, len(entries))
	for _, e := range entries {
		if !e.Date.Before(from) && e.Date.Before(to) {
			filtered = append(filtered, e)
		}
	}

	if len(filtered) == 0 {
		return nil, apperror.NewEmptyReport(MonthLabel(month))
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date.Before(filtered[j].Date)
	})

	agg, err := Aggregate(filtered)
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		CompanyName: c.Name,
		MonthLabel:  MonthLabel(month),
		Filename:    ReportFilename(c.Name, month),
		Legend:      buildLegend(c),
		Pages:       paginate(filtered),
		Summary: Summary{
			TotalEntries: len(filtered),
			TotalTaar:    agg.Totals.Taar,
			TotalAmount:  breakdownAmount(agg.Breakdown),
			Breakdown:    agg.Breakdown,
		},
	}

	return report, nil
}

// buildLegend lists all qualities known for the company with their
// receivable rates, whether or not they appear in the month's entries.
func buildLegend(c *company.Company) []LegendRow {
	legend := make([]LegendRow, 0, len(c.Qualities))
	for _, q := range c.Qualities {
		legend = append(legend, LegendRow{
			Name:           q.Name,
			ReceivableRate: q.ReceivableRate,
		})
	}
	return legend
}

// paginate splits sorted entries into pages of PageSize rows. Serial
// numbers continue across pages: pageIndex*PageSize + indexInPage + 1.
func paginate(entries []*worklog.Entry) []Page {
	pageCount := (len(entries) + PageSize - 1) / PageSize
	pages := make([]Page, 0, pageCount)

	for p := 0; p < pageCount; p++ {
		start := p * PageSize
		end := start + PageSize
		if end > len(entries) {
			end = len(entries)
		}

		rows := make([]Row, 0, end-start)
		for i, e := range entries[start:end] {
			rows = append(rows, Row{
				Serial:      p*PageSize + i + 1,
				Date:        e.Date,
				MachineNo:   e.MachineNo,
				QualityName: e.Quality.Name,
				KarigarName: e.KarigarName,
				Taar:        e.Taar,
			})
		}

		pages = append(pages, Page{Number: p + 1, Rows: rows})
	}

	return pages
}

func breakdownAmount(rows []BreakdownRow) float64 {
	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	return total
}
