package numerator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
)

// Mock objects
type mockRow struct {
	val int64
	err error
}

func (m *mockRow) Scan(dest ...any) error {
	if m.err != nil {
		return m.err
	}
	if len(dest) > 0 {
		if ptr, ok := dest[0].(*int64); ok {
			*ptr = m.val
		}
	}
	return nil
}

type mockQuerier struct {
	mu           sync.Mutex
	currentValue int64 // Simulates DB sequence value
	calls        int
}

func (m *mockQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	m.currentValue++
	return &mockRow{val: m.currentValue}
}

func TestGetNextNumber(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	ctx := context.Background()
	cfg := DefaultConfig("CO")

	num, err := svc.GetNextNumber(ctx, cfg, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "CO-00001" {
		t.Errorf("expected CO-00001, got %s", num)
	}

	num, err = svc.GetNextNumber(ctx, cfg, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "CO-00002" {
		t.Errorf("expected CO-00002, got %s", num)
	}
	if q.calls != 2 {
		t.Errorf("expected 2 DB calls, got %d", q.calls)
	}
}

func TestGetNextNumber_WithYear(t *testing.T) {
	q := &mockQuerier{}
	svc := New(q)
	cfg := Config{
		Prefix:      "WL",
		IncludeYear: true,
		PadWidth:    4,
		ResetPeriod: "year",
	}

	period := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	num, err := svc.GetNextNumber(context.Background(), cfg, period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if num != "WL-2026-0001" {
		t.Errorf("expected WL-2026-0001, got %s", num)
	}
}

func TestBuildKey(t *testing.T) {
	svc := New(&mockQuerier{})
	period := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		reset string
		want  string
	}{
		{"never", "CO"},
		{"year", "CO_2026"},
		{"month", "CO_2026_03"},
	}

	for _, tt := range tests {
		cfg := Config{Prefix: "CO", ResetPeriod: tt.reset}
		if got := svc.buildKey(cfg, period); got != tt.want {
			t.Errorf("buildKey(%q) = %q, want %q", tt.reset, got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	if got := ParseNumber("CO-00042"); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := ParseNumber("WL-2026-00007"); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := ParseNumber("garbage"); got != -1 {
		t.Errorf("expected -1, got %d", got)
	}
}
