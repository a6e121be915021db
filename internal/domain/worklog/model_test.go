package worklog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milldesk/internal/core/id"
)

func validEntry() *Entry {
	e := NewEntry(
		time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
		"M-01", "Ramesh", id.New(), id.New(),
	)
	e.UserID = id.New()
	e.Taar = "10.5"
	return e
}

func TestEntryValidate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid entry normalizes taar", func(t *testing.T) {
		e := validEntry()
		require.NoError(t, e.Validate(ctx))
		assert.Equal(t, "10.500", e.Taar)
	})

	t.Run("empty taar becomes zero", func(t *testing.T) {
		e := validEntry()
		e.Taar = ""
		require.NoError(t, e.Validate(ctx))
		assert.Equal(t, "0.000", e.Taar)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		broken := map[string]func(*Entry){
			"date":    func(e *Entry) { e.Date = time.Time{} },
			"machine": func(e *Entry) { e.MachineNo = "" },
			"karigar": func(e *Entry) { e.KarigarName = "" },
			"company": func(e *Entry) { e.CompanyID = id.Nil() },
			"quality": func(e *Entry) { e.QualityID = id.Nil() },
		}
		for name, mutate := range broken {
			e := validEntry()
			mutate(e)
			assert.Error(t, e.Validate(ctx), name)
		}
	})

	t.Run("negative taar rejected", func(t *testing.T) {
		e := validEntry()
		e.Taar = "-1.0"
		assert.Error(t, e.Validate(ctx))
	})
}

func TestMonthBounds(t *testing.T) {
	from, to := MonthBounds(time.Date(2026, time.March, 17, 14, 30, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), to)

	// December rolls over into the next year.
	from, to = MonthBounds(time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), to)
}
