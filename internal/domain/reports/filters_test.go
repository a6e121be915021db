package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"milldesk/internal/core/id"
	"milldesk/internal/domain/worklog"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func TestDateRange(t *testing.T) {
	entry := makeEntry(time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC),
		id.New(), "Cotton 40s Plain", "110.00", "125.00", "1.000")

	// both bounds, inside
	assert.True(t, DateRange(ptr(date(2024, time.March, 1)), ptr(date(2024, time.March, 31)))(entry))

	// both bounds, outside
	assert.False(t, DateRange(ptr(date(2024, time.April, 1)), ptr(date(2024, time.April, 30)))(entry))

	// start only, after the entry date
	assert.False(t, DateRange(ptr(date(2024, time.March, 16)), nil)(entry))

	// start only, on the entry date: time-of-day is stripped before comparing
	assert.True(t, DateRange(ptr(date(2024, time.March, 15)), nil)(entry))

	// end only
	assert.True(t, DateRange(nil, ptr(date(2024, time.March, 15)))(entry))
	assert.False(t, DateRange(nil, ptr(date(2024, time.March, 14)))(entry))

	// no bounds always passes
	assert.True(t, DateRange(nil, nil)(entry))
}

func TestQualityName(t *testing.T) {
	entry := makeEntry(date(2024, time.March, 15), id.New(), "Cotton 40s Plain", "110.00", "125.00", "1.000")

	assert.True(t, QualityName("")(entry))
	assert.True(t, QualityName("cotton")(entry))
	assert.True(t, QualityName("40S")(entry))
	assert.False(t, QualityName("rayon")(entry))

	entry.Quality = nil
	assert.True(t, QualityName("")(entry))
	assert.False(t, QualityName("cotton")(entry))
}

func TestExactMatchPredicates(t *testing.T) {
	entry := makeEntry(date(2024, time.March, 15), id.New(), "Cotton 40s Plain", "110.00", "125.00", "1.000")
	entry.KarigarName = "Ramesh"
	entry.MachineNo = "M-7"

	assert.True(t, Karigar("")(entry))
	assert.True(t, Karigar("Ramesh")(entry))
	assert.False(t, Karigar("ramesh")(entry)) // exact, not case-folded
	assert.False(t, Karigar("Suresh")(entry))

	assert.True(t, Machine("M-7")(entry))
	assert.False(t, Machine("M-8")(entry))
}

func TestAnd_Apply(t *testing.T) {
	cotton := id.New()
	rayon := id.New()

	a := makeEntry(date(2024, time.March, 10), cotton, "Cotton 40s Plain", "110.00", "125.00", "1.000")
	a.KarigarName = "Ramesh"
	b := makeEntry(date(2024, time.March, 20), rayon, "Rayon 30D", "96.00", "112.00", "1.000")
	b.KarigarName = "Ramesh"
	c := makeEntry(date(2024, time.April, 2), cotton, "Cotton 40s Plain", "110.00", "125.00", "1.000")
	c.KarigarName = "Suresh"

	pred := And(
		DateRange(ptr(date(2024, time.March, 1)), ptr(date(2024, time.March, 31))),
		QualityName("cotton"),
		Karigar("Ramesh"),
	)

	filtered := Apply([]*worklog.Entry{a, b, c}, pred)
	assert.Len(t, filtered, 1)
	assert.Same(t, a, filtered[0])

	// no predicates always passes
	assert.Len(t, Apply([]*worklog.Entry{a, b, c}, And()), 3)
}
