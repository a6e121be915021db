package reports

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/entity"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/worklog"
)

func makeEntry(date time.Time, qualityID id.ID, qualityName, payable, receivable, taar string) *worklog.Entry {
	return &worklog.Entry{
		BaseRecord:  entity.NewBaseRecord(),
		Date:        date,
		MachineNo:   "M-1",
		KarigarName: "Ramesh",
		CompanyID:   id.New(),
		QualityID:   qualityID,
		Taar:        taar,
		Quality: &worklog.QualityRef{
			Name:           qualityName,
			PayableRate:    payable,
			ReceivableRate: receivable,
		},
	}
}

func TestAggregate_Empty(t *testing.T) {
	agg, err := Aggregate(nil)
	require.NoError(t, err)

	assert.Zero(t, agg.Totals.Receivable)
	assert.Zero(t, agg.Totals.Payable)
	assert.Zero(t, agg.Totals.Profit)
	assert.Zero(t, agg.Totals.Taar)
	assert.Empty(t, agg.Breakdown)
	assert.Zero(t, agg.EntryCount)
}

func TestAggregate_Totals(t *testing.T) {
	cotton := id.New()
	rayon := id.New()
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	entries := []*worklog.Entry{
		makeEntry(day, cotton, "Cotton 40s Plain", "110.00", "125.00", "12.500"),
		makeEntry(day, cotton, "Cotton 40s Plain", "110.00", "125.00", "10.000"),
		makeEntry(day, cotton, "Cotton 40s Plain", "110.00", "125.00", ""),
		makeEntry(day, rayon, "Rayon 30D", "96.00", "112.00", "8.250"),
		makeEntry(day, rayon, "Rayon 30D", "96.00", "112.00", "0.000"),
	}

	agg, err := Aggregate(entries)
	require.NoError(t, err)

	assert.InDelta(t, 599.0, agg.Totals.Receivable, 1e-9) // 3*125 + 2*112
	assert.InDelta(t, 522.0, agg.Totals.Payable, 1e-9)    // 3*110 + 2*96
	assert.InDelta(t, 77.0, agg.Totals.Profit, 1e-9)
	assert.InDelta(t, 30.75, agg.Totals.Taar, 1e-9)
	assert.Equal(t, 5, agg.EntryCount)
}

func TestAggregate_ProfitIsReceivableMinusPayable(t *testing.T) {
	q := id.New()
	day := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)

	entries := []*worklog.Entry{
		makeEntry(day, q, "Silk 20D", "33.33", "47.12", "1.000"),
		makeEntry(day, q, "Silk 20D", "33.33", "47.12", "2.000"),
		makeEntry(day, q, "Silk 20D", "33.33", "47.12", "3.000"),
	}

	agg, err := Aggregate(entries)
	require.NoError(t, err)

	assert.Equal(t, agg.Totals.Receivable-agg.Totals.Payable, agg.Totals.Profit)
}

func TestAggregate_Breakdown(t *testing.T) {
	cotton := id.New()
	rayon := id.New()
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	entries := []*worklog.Entry{
		makeEntry(day, cotton, "Cotton 40s Plain", "110.00", "125.00", "1.000"),
		makeEntry(day, rayon, "Rayon 30D", "96.00", "112.00", "1.000"),
		makeEntry(day, cotton, "Cotton 40s Plain", "110.00", "125.00", "1.000"),
	}

	agg, err := Aggregate(entries)
	require.NoError(t, err)
	require.Len(t, agg.Breakdown, 2)

	// first-appearance order
	assert.Equal(t, "Cotton 40s Plain", agg.Breakdown[0].Name)
	assert.Equal(t, 2, agg.Breakdown[0].Count)
	assert.InDelta(t, 250.0, agg.Breakdown[0].Amount, 1e-9)

	assert.Equal(t, "Rayon 30D", agg.Breakdown[1].Name)
	assert.Equal(t, 1, agg.Breakdown[1].Count)
	assert.InDelta(t, 112.0, agg.Breakdown[1].Amount, 1e-9)

	// amount == count x receivable for every row
	for _, row := range agg.Breakdown {
		var rate float64
		switch row.QualityID {
		case cotton:
			rate = 125.0
		case rayon:
			rate = 112.0
		}
		assert.InDelta(t, float64(row.Count)*rate, row.Amount, 1e-9)
	}
}

func TestAggregate_MissingQuality(t *testing.T) {
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	e := makeEntry(day, id.New(), "", "", "", "")
	e.Quality = nil

	_, err := Aggregate([]*worklog.Entry{e})
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDataIntegrity, appErr.Code)
}

func TestAggregate_MalformedRatePropagatesNaN(t *testing.T) {
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := []*worklog.Entry{
		makeEntry(day, id.New(), "Broken", "abc", "125.00", "1.000"),
	}

	agg, err := Aggregate(entries)
	require.NoError(t, err)

	assert.True(t, math.IsNaN(agg.Totals.Payable))
	assert.True(t, math.IsNaN(agg.Totals.Profit))
	assert.InDelta(t, 125.0, agg.Totals.Receivable, 1e-9)
}

func TestAggregate_MalformedTaarPropagatesNaN(t *testing.T) {
	day := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	entries := []*worklog.Entry{
		makeEntry(day, id.New(), "Cotton", "110.00", "125.00", "not-a-number"),
	}

	agg, err := Aggregate(entries)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(agg.Totals.Taar))
}
