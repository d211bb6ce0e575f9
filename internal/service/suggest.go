package service

import (
	"context"
	"sort"
	"time"

	"github.com/xolan/timetrace/internal/timeutil"
)

// activitySuggest ranks activities used inside the lookback window.
//
// Each record on a day daysAgo days before the anchor weighs
// (lookback - daysAgo): frequency mode adds the weight once per record and
// duration mode adds durationSeconds * weight. The anchor is the latest
// tracked date, or today for an empty store. An explicit from/to pair
// replaces the rolling window.
func (e *Engine) activitySuggest(ctx context.Context, req Request) (*SuggestResult, error) {
	lookback, err := positiveOr("lookback", req.LookbackDays, e.settings.SuggestLookbackDays)
	if err != nil {
		return nil, err
	}
	topN, err := positiveOr("top", req.TopN, e.settings.SuggestTopN)
	if err != nil {
		return nil, err
	}
	mode := req.ScoreMode
	if mode == "" {
		mode = e.settings.SuggestScoreMode
	}
	if mode, err = ParseScoreMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ScoreFrequency
	}

	start, end, explicit, err := timeutil.ResolveExplicit(req.From, req.To)
	if err != nil {
		return nil, err
	}
	if explicit {
		s, _ := timeutil.ParseDate(start)
		n, _ := timeutil.ParseDate(end)
		lookback = timeutil.DayCount(s, n)
	} else {
		anchor, err := e.anchorDate(ctx)
		if err != nil {
			return nil, err
		}
		if start, end, err = timeutil.ResolveRolling(anchor, lookback); err != nil {
			return nil, err
		}
	}
	anchor, _ := timeutil.ParseDate(end)

	rows, err := e.repo.ActivityUsage(ctx, start, end, req.ActivityPrefix)
	if err != nil {
		return nil, err
	}

	byPath := make(map[string]*Suggestion)
	var order []string
	for _, row := range rows {
		day, err := timeutil.ParseDate(row.Date)
		if err != nil {
			e.logger.Warn("skipping activity row with bad date", "path", row.Path, "date", row.Date)
			continue
		}
		weight := int64(lookback - timeutil.DaysBetween(day, anchor))
		if weight <= 0 {
			continue
		}

		s, ok := byPath[row.Path]
		if !ok {
			s = &Suggestion{Path: row.Path}
			byPath[row.Path] = s
			order = append(order, row.Path)
		}
		switch mode {
		case ScoreDuration:
			s.Score += row.TotalSeconds * weight
		default:
			s.Score += row.UsageCount * weight
		}
		s.UsageCount += row.UsageCount
		s.TotalSeconds += row.TotalSeconds
		if row.Date > s.LastDate {
			s.LastDate = row.Date
		}
	}

	items := make([]Suggestion, 0, len(order))
	for _, p := range order {
		items = append(items, *byPath[p])
	}
	sortSuggestions(items)
	if len(items) > topN {
		items = items[:topN]
	}

	return &SuggestResult{
		Start:        start,
		End:          end,
		LookbackDays: lookback,
		Mode:         mode,
		Items:        items,
	}, nil
}

// sortSuggestions orders by score desc, usage count desc, then path asc.
func sortSuggestions(items []Suggestion) {
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.UsageCount != b.UsageCount {
			return a.UsageCount > b.UsageCount
		}
		return a.Path < b.Path
	})
}

// anchorDate is the latest tracked date, falling back to today.
func (e *Engine) anchorDate(ctx context.Context) (time.Time, error) {
	latest, err := e.repo.LatestDate(ctx)
	if err != nil {
		return time.Time{}, err
	}
	if latest == "" {
		return timeutil.DateOf(e.now()), nil
	}
	d, err := timeutil.ParseDate(latest)
	if err != nil {
		e.logger.Warn("latest tracked date unparsable, anchoring to today", "date", latest)
		return timeutil.DateOf(e.now()), nil
	}
	return d, nil
}
