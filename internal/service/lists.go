package service

import (
	"context"

	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/filter"
	"github.com/xolan/timetrace/internal/timeutil"
)

func (e *Engine) years(ctx context.Context, req Request) (*YearsResult, error) {
	f, err := req.Filter.Normalize()
	if err != nil {
		return nil, err
	}
	years, err := e.repo.Years(ctx, f)
	if err != nil {
		return nil, err
	}
	return &YearsResult{Years: years}, nil
}

func (e *Engine) months(ctx context.Context, req Request) (*MonthsResult, error) {
	f, err := req.Filter.Normalize()
	if err != nil {
		return nil, err
	}
	months, err := e.repo.Months(ctx, f)
	if err != nil {
		return nil, err
	}
	return &MonthsResult{Months: months}, nil
}

func (e *Engine) days(ctx context.Context, req Request) (*DaysResult, error) {
	f, err := req.Filter.Normalize()
	if err != nil {
		return nil, err
	}
	days, err := e.repo.Days(ctx, f)
	if err != nil {
		return nil, err
	}
	return &DaysResult{Days: days}, nil
}

func (e *Engine) daysDuration(ctx context.Context, req Request) (*DaysDurationResult, error) {
	f, err := req.Filter.Normalize()
	if err != nil {
		return nil, err
	}
	rows, err := e.repo.DayDurations(ctx, f)
	if err != nil {
		return nil, err
	}
	res := &DaysDurationResult{Days: rows}
	for _, r := range rows {
		res.TotalSeconds += r.TotalSeconds
	}
	return res, nil
}

func (e *Engine) search(ctx context.Context, req Request) (*SearchResult, error) {
	if !req.Filter.HasTextPredicates() {
		return nil, apperr.Validationf("search needs a keyword: give --remark, --day-remark, --project or --root")
	}
	f, err := req.Filter.Normalize()
	if err != nil {
		return nil, err
	}
	records, err := e.repo.Records(ctx, f)
	if err != nil {
		return nil, err
	}
	res := &SearchResult{Records: records}
	for _, r := range records {
		res.TotalSeconds += r.DurationSeconds
	}
	return res, nil
}

// resolvePeriod applies a named period to f, replacing any explicit bounds.
// It returns f unchanged when req names no period.
func (e *Engine) resolvePeriod(req Request, f filter.Filter) (filter.Filter, string, string, error) {
	if req.Period == "" {
		if req.PeriodArg != "" {
			return f, "", "", apperr.Validationf("period argument '%s' given without a period", req.PeriodArg)
		}
		return f, "", "", nil
	}
	start, end, err := e.expandPeriod(req.Period, req.PeriodArg)
	if err != nil {
		return f, "", "", err
	}
	return f.WithRange(start, end), start, end, nil
}

func (e *Engine) expandPeriod(kind, arg string) (string, string, error) {
	return timeutil.ExpandPeriod(kind, arg, e.now(), e.settings.RecentDays)
}

// positiveOr returns def for zero and rejects negatives.
func positiveOr(name string, v, def int) (int, error) {
	switch {
	case v < 0:
		return 0, apperr.Validationf("invalid %s %d: must be positive", name, v)
	case v == 0:
		return def, nil
	default:
		return v, nil
	}
}
