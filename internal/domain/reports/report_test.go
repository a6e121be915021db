package reports

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/catalogs/company"
	"milldesk/internal/domain/catalogs/quality"
	"milldesk/internal/domain/worklog"
)

func makeCompany(name string, qualities ...*quality.Quality) *company.Company {
	c := &company.Company{
		Catalog: entity.NewCatalog("CO-00001", name),
		UserID:  id.New(),
	}
	c.Qualities = qualities
	return c
}

func makeQuality(name, payable, receivable string) *quality.Quality {
	return quality.New(id.New(), name, payable, receivable)
}

func TestBuildMonthlyReport_EmptyMonth(t *testing.T) {
	c := makeCompany("Apex Textiles Pvt Ltd")
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	// entries exist, but all outside the month
	outside := makeEntry(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC),
		id.New(), "Cotton 40s Plain", "110.00", "125.00", "1.000")

	_, err := BuildMonthlyReport(c, []*worklog.Entry{outside}, month)
	require.Error(t, err)
	assert.True(t, apperror.IsEmptyReport(err))
}

func TestBuildMonthlyReport_MonthBoundsInclusive(t *testing.T) {
	q := makeQuality("Cotton 40s Plain", "110.00", "125.00")
	c := makeCompany("Apex Textiles Pvt Ltd", q)
	month := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	first := makeEntry(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), q.ID, q.Name, "110.00", "125.00", "1.000")
	lastDay := makeEntry(time.Date(2026, time.March, 31, 23, 59, 0, 0, time.UTC), q.ID, q.Name, "110.00", "125.00", "1.000")
	nextMonth := makeEntry(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), q.ID, q.Name, "110.00", "125.00", "1.000")

	report, err := BuildMonthlyReport(c, []*worklog.Entry{nextMonth, lastDay, first}, month)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Summary.TotalEntries)
	assert.Equal(t, 1, report.PageCount())
	// sorted ascending by date
	assert.Equal(t, first.Date, report.Pages[0].Rows[0].Date)
	assert.Equal(t, lastDay.Date, report.Pages[0].Rows[1].Date)
}

func TestBuildMonthlyReport_Pagination(t *testing.T) {
	q := makeQuality("Rayon 30D", "96.00", "112.00")
	c := makeCompany("BlueLoom Fabrics", q)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	const n = 57
	entries := make([]*worklog.Entry, 0, n)
	for i := 0; i < n; i++ {
		day := time.Date(2026, time.March, 1+i%28, 0, 0, 0, 0, time.UTC)
		entries = append(entries, makeEntry(day, q.ID, q.Name, "96.00", "112.00", "1.000"))
	}

	report, err := BuildMonthlyReport(c, entries, month)
	require.NoError(t, err)

	// ceil(57/25) = 3
	require.Equal(t, 3, report.PageCount())
	assert.Len(t, report.Pages[0].Rows, 25)
	assert.Len(t, report.Pages[1].Rows, 25)
	assert.Len(t, report.Pages[2].Rows, 7)

	// serials strictly increasing 1..n with no resets across pages
	serial := 0
	for _, page := range report.Pages {
		for _, row := range page.Rows {
			serial++
			assert.Equal(t, serial, row.Serial)
		}
	}
	assert.Equal(t, n, serial)
}

func TestBuildMonthlyReport_StableSortForEqualDates(t *testing.T) {
	q := makeQuality("Cotton 40s Plain", "110.00", "125.00")
	c := makeCompany("Summit Weaves", q)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)

	entries := make([]*worklog.Entry, 0, 5)
	for i := 0; i < 5; i++ {
		e := makeEntry(day, q.ID, q.Name, "110.00", "125.00", "1.000")
		e.KarigarName = fmt.Sprintf("Karigar %d", i)
		entries = append(entries, e)
	}

	report, err := BuildMonthlyReport(c, entries, month)
	require.NoError(t, err)

	for i, row := range report.Pages[0].Rows {
		assert.Equal(t, fmt.Sprintf("Karigar %d", i), row.KarigarName)
	}
}

func TestBuildMonthlyReport_SummaryAndLegend(t *testing.T) {
	cotton := makeQuality("Cotton 40s Plain", "110.00", "125.00")
	rayon := makeQuality("Rayon 30D", "96.00", "112.00")
	silk := makeQuality("Silk 20D", "150.00", "180.00")
	c := makeCompany("Emerald Mills", cotton, rayon, silk)
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC)

	entries := []*worklog.Entry{
		makeEntry(day, cotton.ID, cotton.Name, "110.00", "125.00", "4.000"),
		makeEntry(day, cotton.ID, cotton.Name, "110.00", "125.00", "6.000"),
		makeEntry(day, rayon.ID, rayon.Name, "96.00", "112.00", "5.000"),
	}

	report, err := BuildMonthlyReport(c, entries, month)
	require.NoError(t, err)

	// legend lists all known qualities, even unused silk
	require.Len(t, report.Legend, 3)
	assert.Equal(t, "Silk 20D", report.Legend[2].Name)
	assert.Equal(t, "180.00", report.Legend[2].ReceivableRate)

	// summary breakdown omits silk (zero entries)
	require.Len(t, report.Summary.Breakdown, 2)
	assert.InDelta(t, 250.0+112.0, report.Summary.TotalAmount, 1e-9)
	assert.InDelta(t, 15.0, report.Summary.TotalTaar, 1e-9)
	assert.Equal(t, 3, report.Summary.TotalEntries)
	assert.Equal(t, "March 2026", report.MonthLabel)
}

func TestReportFilename(t *testing.T) {
	month := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Apex_Textiles_Pvt_Ltd_WorkLog_March_2026.pdf",
		ReportFilename("Apex Textiles Pvt Ltd", month))
	assert.Equal(t, "A_B_Mills_WorkLog_March_2026.pdf",
		ReportFilename("A&B Mills", month))
}
