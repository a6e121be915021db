package reports

import (
	"strings"
	"time"

	"milldesk/internal/domain/worklog"
)

// Predicate is a boolean test over one work log entry. Active table
// filters are combined with And; an unset filter always passes.
type Predicate func(*worklog.Entry) bool

// And combines predicates; the result passes when every predicate
// passes. With no predicates it always passes.
func And(preds ...Predicate) Predicate {
	return func(e *worklog.Entry) bool {
		for _, p := range preds {
			if !p(e) {
				return false
			}
		}
		return true
	}
}

// DateRange matches entries whose date, normalized to midnight, falls
// in [start, end]. Either bound may be nil; a nil bound is open.
func DateRange(start, end *time.Time) Predicate {
	return func(e *worklog.Entry) bool {
		d := midnight(e.Date)
		if start != nil && d.Before(midnight(*start)) {
			return false
		}
		if end != nil && d.After(midnight(*end)) {
			return false
		}
		return true
	}
}

// QualityName matches entries whose resolved quality name contains the
// filter text, case-insensitively. Empty text always passes.
func QualityName(text string) Predicate {
	needle := strings.ToLower(text)
	return func(e *worklog.Entry) bool {
		if needle == "" {
			return true
		}
		if e.Quality == nil {
			return false
		}
		return strings.Contains(strings.ToLower(e.Quality.Name), needle)
	}
}

// Karigar matches entries whose karigar name equals the filter value
// exactly. Empty value always passes.
func Karigar(name string) Predicate {
	return exact(name, func(e *worklog.Entry) string { return e.KarigarName })
}

// Machine matches entries whose machine number equals the filter value
// exactly. Empty value always passes.
func Machine(no string) Predicate {
	return exact(no, func(e *worklog.Entry) string { return e.MachineNo })
}

func exact(want string, get func(*worklog.Entry) string) Predicate {
	return func(e *worklog.Entry) bool {
		if want == "" {
			return true
		}
		return get(e) == want
	}
}

// Apply returns the entries that pass the predicate, preserving order.
func Apply(entries []*worklog.Entry, pred Predicate) []*worklog.Entry {
	out := make([]*worklog.Entry, 0, len(entries))
	for _, e := range entries {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
