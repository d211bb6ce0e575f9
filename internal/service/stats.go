package service

import (
	"context"

	"github.com/xolan/timetrace/internal/stats"
)

// daysStats computes the distribution of per-day totals. Limit and reverse
// are cleared so the statistics always see the whole population.
func (e *Engine) daysStats(ctx context.Context, req Request) (*DaysStatsResult, error) {
	topN, err := positiveOr("top", req.TopN, e.settings.StatsTopN)
	if err != nil {
		return nil, err
	}

	f, start, end, err := e.resolvePeriod(req, req.Filter)
	if err != nil {
		return nil, err
	}
	f.Limit = 0
	f.Reverse = false

	f, err = f.Normalize()
	if err != nil {
		return nil, err
	}
	if start == "" && f.From != "" && f.To != "" {
		start, end = f.From, f.To
	}

	rows, err := e.repo.DayDurations(ctx, f)
	if err != nil {
		return nil, err
	}

	return &DaysStatsResult{
		Start: start,
		End:   end,
		Stats: stats.Calculate(stats.Values(rows)),
		Top:   stats.TopN(rows, topN),
	}, nil
}
