package service

import (
	"context"
	"fmt"

	"github.com/xolan/timetrace/internal/series"
	"github.com/xolan/timetrace/internal/timeutil"
)

// reportChart builds the zero-filled daily series for the chart, optionally
// scoped to one root.
func (e *Engine) reportChart(ctx context.Context, req Request) (*ChartResult, error) {
	start, end, err := e.chartRange(req)
	if err != nil {
		return nil, err
	}

	f := req.Filter.WithRange(start, end)
	f.Limit = 0
	f.Reverse = false
	if f, err = f.Normalize(); err != nil {
		return nil, err
	}

	rows, err := e.repo.RootDayDurations(ctx, f)
	if err != nil {
		return nil, err
	}
	s, err := series.Build(rows, start, end)
	if err != nil {
		return nil, err
	}
	roots, err := e.repo.RootNames(ctx)
	if err != nil {
		return nil, err
	}

	return &ChartResult{Root: req.Root, Series: s, Roots: roots}, nil
}

// chartRange picks the chart window: explicit from/to, then a named period,
// then year/month, then the rolling lookback ending today.
func (e *Engine) chartRange(req Request) (string, string, error) {
	start, end, ok, err := timeutil.ResolveExplicit(req.From, req.To)
	if err != nil || ok {
		return start, end, err
	}

	if req.Period != "" {
		return e.expandPeriod(req.Period, req.PeriodArg)
	}

	if req.Year != 0 {
		f, err := req.Filter.Normalize()
		if err != nil {
			return "", "", err
		}
		token := fmt.Sprintf("%04d", f.Year)
		if f.Month != 0 {
			token = fmt.Sprintf("%04d%02d", f.Year, f.Month)
		}
		if start, err = timeutil.NormalizeBoundary(token, false); err != nil {
			return "", "", err
		}
		if end, err = timeutil.NormalizeBoundary(token, true); err != nil {
			return "", "", err
		}
		return start, end, nil
	}

	lookback, err := positiveOr("lookback", req.LookbackDays, e.settings.ChartLookbackDays)
	if err != nil {
		return "", "", err
	}
	return timeutil.ResolveRolling(e.now(), lookback)
}
