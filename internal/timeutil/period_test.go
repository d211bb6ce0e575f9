package timeutil

import (
	"strings"
	"testing"
	"time"
)

func TestExpandPeriod(t *testing.T) {
	today := time.Date(2026, time.February, 18, 9, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name          string
		kind          string
		arg           string
		expectedStart string
		expectedEnd   string
	}{
		{"day explicit", "day", "20260203", "2026-02-03", "2026-02-03"},
		{"day iso", "day", "2026-02-03", "2026-02-03", "2026-02-03"},
		{"day default", "day", "", "2026-02-18", "2026-02-18"},
		{"week explicit", "week", "2026-W07", "2026-02-09", "2026-02-15"},
		{"week first crosses year", "week", "2026-W01", "2025-12-29", "2026-01-04"},
		{"week default", "week", "", "2026-02-16", "2026-02-22"},
		{"month explicit", "month", "202402", "2024-02-01", "2024-02-29"},
		{"month dashed", "month", "2026-04", "2026-04-01", "2026-04-30"},
		{"month default", "month", "", "2026-02-01", "2026-02-28"},
		{"year explicit", "year", "2025", "2025-01-01", "2025-12-31"},
		{"year default", "year", "", "2026-01-01", "2026-12-31"},
		{"recent explicit", "recent", "3", "2026-02-16", "2026-02-18"},
		{"recent default", "recent", "", "2026-02-12", "2026-02-18"},
		{"range pipe", "range", "20260201|20260210", "2026-02-01", "2026-02-10"},
		{"range comma", "range", "202601,202602", "2026-01-01", "2026-02-28"},
		{"keyword case", "WEEK", "2026-W07", "2026-02-09", "2026-02-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ExpandPeriod(tt.kind, tt.arg, today, 7)
			if err != nil {
				t.Fatalf("ExpandPeriod(%q, %q) unexpected error: %v", tt.kind, tt.arg, err)
			}
			if start != tt.expectedStart || end != tt.expectedEnd {
				t.Errorf("ExpandPeriod(%q, %q) = (%s, %s), expected (%s, %s)",
					tt.kind, tt.arg, start, end, tt.expectedStart, tt.expectedEnd)
			}
		})
	}
}

func TestExpandPeriod_Errors(t *testing.T) {
	today := time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		kind string
		arg  string
	}{
		{"day needs full date", "day", "202602"},
		{"bad week format", "week", "2026-7"},
		{"week 53 missing", "week", "2025-W53"},
		{"week 00", "week", "2026-W00"},
		{"month wrong length", "month", "2026"},
		{"year wrong length", "year", "26"},
		{"recent not a number", "recent", "seven"},
		{"recent zero", "recent", "0"},
		{"range one side", "range", "20260201"},
		{"range reversed", "range", "20260210|20260201"},
		{"range empty side", "range", "20260201|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := ExpandPeriod(tt.kind, tt.arg, today, 7); err == nil {
				t.Errorf("ExpandPeriod(%q, %q) expected error, got nil", tt.kind, tt.arg)
			}
		})
	}
}

func TestExpandPeriod_UnknownKeywordNamesSupportedSet(t *testing.T) {
	_, _, err := ExpandPeriod("fortnight", "", time.Now(), 7)
	if err == nil {
		t.Fatal("expected error for unknown period")
	}
	for _, p := range SupportedPeriods {
		if !strings.Contains(err.Error(), p) {
			t.Errorf("error %q does not mention supported period %q", err.Error(), p)
		}
	}
}

func TestParseISOWeek_Week53(t *testing.T) {
	// 2026 starts on a Thursday and therefore has 53 ISO weeks.
	monday, err := ParseISOWeek("2026-W53")
	if err != nil {
		t.Fatalf("ParseISOWeek unexpected error: %v", err)
	}
	if got := FormatDate(monday); got != "2026-12-28" {
		t.Errorf("ParseISOWeek(2026-W53) = %s, expected 2026-12-28", got)
	}
}
