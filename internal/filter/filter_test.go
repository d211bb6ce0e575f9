package filter

import (
	"testing"

	"github.com/xolan/timetrace/internal/apperr"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"zero value", Filter{}, true},
		{"year", Filter{Year: 2026}, false},
		{"remark", Filter{Remark: "math"}, false},
		{"root", Filter{Root: "study"}, false},
		{"exercise zero flag", Filter{Exercise: IntPtr(0)}, false},
		{"overnight", Filter{Overnight: true}, false},
		{"reverse only", Filter{Reverse: true}, false},
		{"limit only", Filter{Limit: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestHasRecordPredicates(t *testing.T) {
	if (Filter{DayRemark: "rainy"}).HasRecordPredicates() {
		t.Error("day remark is a day-level predicate, HasRecordPredicates() = true")
	}
	if !(Filter{Project: "math"}).HasRecordPredicates() {
		t.Error("project is a record-level predicate, HasRecordPredicates() = false")
	}
	if !(Filter{DayRemark: "rainy"}).HasTextPredicates() {
		t.Error("HasTextPredicates() = false for day remark")
	}
}

func TestNormalize(t *testing.T) {
	f, err := Filter{From: "202602", To: "202602"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize unexpected error: %v", err)
	}
	if f.From != "2026-02-01" {
		t.Errorf("From = %q, expected 2026-02-01", f.From)
	}
	if f.To != "2026-02-28" {
		t.Errorf("To = %q, expected 2026-02-28", f.To)
	}
}

func TestNormalize_OneSidedBoundsAllowed(t *testing.T) {
	f, err := Filter{From: "2026"}.Normalize()
	if err != nil {
		t.Fatalf("Normalize unexpected error: %v", err)
	}
	if f.From != "2026-01-01" || f.To != "" {
		t.Errorf("Normalize = (%q, %q), expected (2026-01-01, \"\")", f.From, f.To)
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		filter Filter
	}{
		{"month 13", Filter{Month: 13}},
		{"negative month", Filter{Month: -1}},
		{"negative limit", Filter{Limit: -2}},
		{"bad from", Filter{From: "2026-02-30"}},
		{"bad to", Filter{To: "abc"}},
		{"reversed", Filter{From: "20260215", To: "20260201"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.filter.Normalize()
			if err == nil {
				t.Fatal("Normalize expected error, got nil")
			}
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("error kind = %v, expected validation", apperr.KindOf(err))
			}
		})
	}
}

func TestWithRange(t *testing.T) {
	f := Filter{Year: 2025, Month: 3, From: "2025-03-01", Root: "study"}.WithRange("2026-02-01", "2026-02-07")
	if f.Year != 0 || f.Month != 0 {
		t.Errorf("WithRange kept year/month: %d/%d", f.Year, f.Month)
	}
	if f.From != "2026-02-01" || f.To != "2026-02-07" {
		t.Errorf("WithRange = (%q, %q)", f.From, f.To)
	}
	if f.Root != "study" {
		t.Errorf("WithRange dropped root: %q", f.Root)
	}
}
