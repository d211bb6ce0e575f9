package service

import (
	"context"
	"testing"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/timeutil"
)

func TestDaysStats_ThreeDays(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionDaysStats}
	req.From = "2026-02-01"
	req.To = "2026-02-03"
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("days_stats unexpected error: %v", err)
	}
	r := res.(*DaysStatsResult)

	if r.Stats.Count != 3 {
		t.Errorf("Count = %d, expected 3", r.Stats.Count)
	}
	if r.Stats.Mean != 1800 {
		t.Errorf("Mean = %f, expected 1800", r.Stats.Mean)
	}
	if r.Stats.Variance != 2160000 {
		t.Errorf("Variance = %f, expected 2160000", r.Stats.Variance)
	}
	if r.Stats.MAD != 1800 {
		t.Errorf("MAD = %f, expected 1800", r.Stats.MAD)
	}
	if r.Start != "2026-02-01" || r.End != "2026-02-03" {
		t.Errorf("range = %s..%s, expected 2026-02-01..2026-02-03", r.Start, r.End)
	}
}

func TestDaysStats_IgnoresLimitAndReverse(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionDaysStats}
	req.Limit = 1
	req.Reverse = true
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("days_stats unexpected error: %v", err)
	}
	if n := res.(*DaysStatsResult).Stats.Count; n != 4 {
		t.Errorf("Count = %d, expected all 4 days", n)
	}
}

func TestDaysStats_PeriodOverridesExplicitRange(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionDaysStats, Period: timeutil.PeriodRange, PeriodArg: "2026-02-01|2026-02-02"}
	req.From = "2026-02-03"
	req.To = "2026-02-04"
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("days_stats unexpected error: %v", err)
	}
	r := res.(*DaysStatsResult)
	if r.Stats.Count != 2 || r.Stats.TotalSeconds != 5400 {
		t.Errorf("Count/Total = %d/%d, expected 2/5400", r.Stats.Count, r.Stats.TotalSeconds)
	}
	if r.Start != "2026-02-01" || r.End != "2026-02-02" {
		t.Errorf("range = %s..%s", r.Start, r.End)
	}
}

func TestDaysStats_TopN(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	res, err := e.Run(context.Background(), Request{Action: ActionDaysStats, TopN: 2})
	if err != nil {
		t.Fatalf("days_stats unexpected error: %v", err)
	}
	top := res.(*DaysStatsResult).Top
	if len(top) != 2 || top[0].Date != "2026-02-01" || top[1].Date != "2026-02-02" {
		t.Errorf("Top = %v, expected 2026-02-01 then 2026-02-02", top)
	}
}

func TestDaysStats_EmptyPopulation(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	req := Request{Action: ActionDaysStats}
	req.Year = 1999
	res, err := e.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("days_stats unexpected error: %v", err)
	}
	r := res.(*DaysStatsResult)
	if r.Stats.Count != 0 || r.Stats.Mean != 0 {
		t.Errorf("Stats = %+v, expected zero summary", r.Stats)
	}
	if r.Text() != "0 days\n" {
		t.Errorf("Text() = %q, expected only the footer", r.Text())
	}
}

func TestDaysStats_Validation(t *testing.T) {
	e := newTestEngine(t, seedStore(t))

	tests := []struct {
		name string
		req  Request
	}{
		{"unknown period", Request{Action: ActionDaysStats, Period: "fortnight"}},
		{"bad week", Request{Action: ActionDaysStats, Period: timeutil.PeriodWeek, PeriodArg: "2025-W53"}},
		{"arg without period", Request{Action: ActionDaysStats, PeriodArg: "2026-02-01"}},
		{"negative top", Request{Action: ActionDaysStats, TopN: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Run(context.Background(), tt.req)
			if !apperr.IsKind(err, apperr.KindValidation) {
				t.Errorf("error = %v, expected validation error", err)
			}
		})
	}
}
