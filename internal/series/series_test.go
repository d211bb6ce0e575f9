package series

import (
	"testing"

	"github.com/xolan/timetrace/internal/model"
)

func TestBuild_ZeroFillsGaps(t *testing.T) {
	rows := []model.DayTotal{
		{Date: "2026-02-01", TotalSeconds: 3600},
		{Date: "2026-02-03", TotalSeconds: 1800},
	}

	s, err := Build(rows, "2026-02-01", "2026-02-03")
	if err != nil {
		t.Fatalf("Build unexpected error: %v", err)
	}

	expected := []int64{3600, 0, 1800}
	if len(s.Points) != len(expected) {
		t.Fatalf("len(Points) = %d, expected %d", len(s.Points), len(expected))
	}
	for i, p := range s.Points {
		if p.DurationSeconds != expected[i] {
			t.Errorf("Points[%d].DurationSeconds = %d, expected %d", i, p.DurationSeconds, expected[i])
		}
	}
	if s.Points[1].Date != "2026-02-02" {
		t.Errorf("gap date = %s, expected 2026-02-02", s.Points[1].Date)
	}
	if s.TotalSeconds != 5400 {
		t.Errorf("TotalSeconds = %d, expected 5400", s.TotalSeconds)
	}
	if s.ActiveDays != 2 {
		t.Errorf("ActiveDays = %d, expected 2", s.ActiveDays)
	}
	if s.RangeDays != 3 {
		t.Errorf("RangeDays = %d, expected 3", s.RangeDays)
	}
	if s.AverageSeconds != 1800 {
		t.Errorf("AverageSeconds = %d, expected 1800", s.AverageSeconds)
	}
}

func TestBuild_Invariants(t *testing.T) {
	ranges := []struct {
		start, end string
		days       int
	}{
		{"2026-02-01", "2026-02-01", 1},
		{"2024-02-25", "2024-03-05", 10},
		{"2025-12-30", "2026-01-02", 4},
		{"2026-01-01", "2026-12-31", 365},
	}

	rows := []model.DayTotal{
		{Date: "2024-02-29", TotalSeconds: 100},
		{Date: "2026-01-01", TotalSeconds: 250},
		{Date: "2026-02-01", TotalSeconds: 7},
	}

	for _, r := range ranges {
		s, err := Build(rows, r.start, r.end)
		if err != nil {
			t.Fatalf("Build(%s..%s) unexpected error: %v", r.start, r.end, err)
		}
		if len(s.Points) != r.days || s.RangeDays != r.days {
			t.Errorf("Build(%s..%s) len = %d, RangeDays = %d, expected %d", r.start, r.end, len(s.Points), s.RangeDays, r.days)
		}

		var sum int64
		for i, p := range s.Points {
			if p.Index != BaseIndex+i {
				t.Errorf("Points[%d].Index = %d, expected %d", i, p.Index, BaseIndex+i)
			}
			sum += p.DurationSeconds
		}
		if sum != s.TotalSeconds {
			t.Errorf("sum of points = %d, TotalSeconds = %d", sum, s.TotalSeconds)
		}
		if s.Points[0].Date != r.start || s.Points[len(s.Points)-1].Date != r.end {
			t.Errorf("series spans %s..%s, expected %s..%s", s.Points[0].Date, s.Points[len(s.Points)-1].Date, r.start, r.end)
		}
	}
}

func TestBuild_AverageTruncates(t *testing.T) {
	s, err := Build([]model.DayTotal{{Date: "2026-02-01", TotalSeconds: 10}}, "2026-02-01", "2026-02-03")
	if err != nil {
		t.Fatalf("Build unexpected error: %v", err)
	}
	if s.AverageSeconds != 3 {
		t.Errorf("AverageSeconds = %d, expected 3", s.AverageSeconds)
	}
}

func TestBuild_IgnoresRowsOutsideRange(t *testing.T) {
	rows := []model.DayTotal{
		{Date: "2026-01-31", TotalSeconds: 999},
		{Date: "2026-02-02", TotalSeconds: 60},
	}
	s, err := Build(rows, "2026-02-01", "2026-02-02")
	if err != nil {
		t.Fatalf("Build unexpected error: %v", err)
	}
	if s.TotalSeconds != 60 {
		t.Errorf("TotalSeconds = %d, expected 60", s.TotalSeconds)
	}
}

func TestBuild_InvalidRange(t *testing.T) {
	if _, err := Build(nil, "2026-02-03", "2026-02-01"); err == nil {
		t.Error("Build reversed range expected error, got nil")
	}
	if _, err := Build(nil, "2026-02-30", "2026-03-01"); err == nil {
		t.Error("Build invalid date expected error, got nil")
	}
}
