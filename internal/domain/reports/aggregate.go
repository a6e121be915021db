package reports

import (
	"math"
	"strconv"

	"milldesk/internal/core/apperror"
	"milldesk/internal/core/id"
	"milldesk/internal/domain/worklog"
)

// Aggregate sums a list of work log entries into report totals and a
// per-quality breakdown. Every entry must carry its resolved quality;
// an entry without one indicates a referential violation upstream and
// yields a data-integrity error rather than a silently skipped row.
//
// Rates are decimal strings converted to float64 for summation. A
// malformed rate parses to NaN and propagates through the sums
// unguarded, matching the display-layer behavior this backs: a broken
// total is visible, a quietly dropped entry is not.
func Aggregate(entries []*worklog.Entry) (*Aggregation, error) {
	agg := &Aggregation{
		Breakdown:  []BreakdownRow{},
		EntryCount: len(entries),
	}

	// Breakdown rows keep first-appearance order.
	index := make(map[id.ID]int)

	for _, e := range entries {
		if e.Quality == nil {
			return nil, apperror.NewDataIntegrity("work log entry references a missing quality").
				WithDetail("entryId", e.ID.String()).
				WithDetail("qualityId", e.QualityID.String())
		}

		receivable := parseAmount(e.Quality.ReceivableRate)
		payable := parseAmount(e.Quality.PayableRate)

		agg.Totals.Receivable += receivable
		agg.Totals.Payable += payable
		agg.Totals.Taar += parseTaar(e.Taar)

		i, seen := index[e.QualityID]
		if !seen {
			i = len(agg.Breakdown)
			index[e.QualityID] = i
			agg.Breakdown = append(agg.Breakdown, BreakdownRow{
				QualityID: e.QualityID,
				Name:      e.Quality.Name,
			})
		}
		agg.Breakdown[i].Count++
	}

	for i := range agg.Breakdown {
		row := &agg.Breakdown[i]
		// Amount uses the rate from the first entry of the quality.
		// All entries of one quality resolve to the same row, so any
		// entry's rate would do.
		row.Amount = float64(row.Count) * parseAmount(rateFor(entries, row.QualityID))
	}

	agg.Totals.Profit = agg.Totals.Receivable - agg.Totals.Payable

	return agg, nil
}

func rateFor(entries []*worklog.Entry, qualityID id.ID) string {
	for _, e := range entries {
		if e.QualityID == qualityID && e.Quality != nil {
			return e.Quality.ReceivableRate
		}
	}
	return ""
}

// parseAmount converts a decimal rate string to float64. Malformed
// input becomes NaN and is left to propagate.
func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// parseTaar converts a taar string to float64. Missing taar counts as
// zero; malformed taar becomes NaN like rates.
func parseTaar(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
