package service

import (
	"fmt"
	"strconv"

	"github.com/xolan/timetrace/internal/model"
	"github.com/xolan/timetrace/internal/render"
	"github.com/xolan/timetrace/internal/series"
	"github.com/xolan/timetrace/internal/stats"
	"github.com/xolan/timetrace/internal/tree"
)

// YearsResult lists the distinct years that have days.
type YearsResult struct {
	Years []int
}

func (r *YearsResult) ActionName() string { return ActionYears.String() }

func (r *YearsResult) Text() string {
	lines := make([]string, len(r.Years))
	for i, y := range r.Years {
		lines[i] = strconv.Itoa(y)
	}
	return render.Block(lines, render.Footer(len(r.Years), "year"))
}

func (r *YearsResult) Payload() any {
	return struct {
		Items []int `json:"items"`
		Count int   `json:"count"`
	}{nonNil(r.Years), len(r.Years)}
}

// MonthsResult lists the distinct (year, month) pairs that have days.
type MonthsResult struct {
	Months []model.YearMonth
}

func (r *MonthsResult) ActionName() string { return ActionMonths.String() }

func (r *MonthsResult) Text() string {
	lines := make([]string, len(r.Months))
	for i, m := range r.Months {
		lines[i] = m.String()
	}
	return render.Block(lines, render.Footer(len(r.Months), "month"))
}

func (r *MonthsResult) Payload() any {
	return struct {
		Items []model.YearMonth `json:"items"`
		Count int               `json:"count"`
	}{nonNil(r.Months), len(r.Months)}
}

// DaysResult lists matching dates.
type DaysResult struct {
	Days []string
}

func (r *DaysResult) ActionName() string { return ActionDays.String() }

func (r *DaysResult) Text() string {
	return render.Block(r.Days, render.Footer(len(r.Days), "day"))
}

func (r *DaysResult) Payload() any {
	return struct {
		Items []string `json:"items"`
		Count int      `json:"count"`
	}{nonNil(r.Days), len(r.Days)}
}

// DaysDurationResult lists matching dates with their tracked totals.
type DaysDurationResult struct {
	Days         []model.DayTotal
	TotalSeconds int64
}

func (r *DaysDurationResult) ActionName() string { return ActionDaysDuration.String() }

func (r *DaysDurationResult) Text() string {
	lines := make([]string, len(r.Days))
	for i, d := range r.Days {
		lines[i] = fmt.Sprintf("%s  %8s", d.Date, render.FormatDuration(d.TotalSeconds))
	}
	return render.Block(lines, render.FooterWithTotal(len(r.Days), "day", r.TotalSeconds))
}

func (r *DaysDurationResult) Payload() any {
	return struct {
		Items        []model.DayTotal `json:"items"`
		Count        int              `json:"count"`
		TotalSeconds int64            `json:"total_seconds"`
	}{nonNil(r.Days), len(r.Days), r.TotalSeconds}
}

// DaysStatsResult is the distribution of per-day totals.
type DaysStatsResult struct {
	Start string // empty when no range was resolved
	End   string
	Stats stats.Summary
	Top   []model.DayTotal
}

func (r *DaysStatsResult) ActionName() string { return ActionDaysStats.String() }

func (r *DaysStatsResult) Text() string {
	s := r.Stats
	var lines []string
	if r.Start != "" {
		lines = append(lines, fmt.Sprintf("%-8s %s .. %s", "Range", r.Start, r.End))
	}
	if s.Count > 0 {
		row := func(label, value string) {
			lines = append(lines, fmt.Sprintf("%-8s %s", label, value))
		}
		row("Total", render.FormatDuration(s.TotalSeconds))
		row("Mean", render.FormatDuration(int64(s.Mean)))
		row("Median", render.FormatDuration(int64(s.Median)))
		row("StdDev", render.FormatDuration(int64(s.StdDev)))
		row("MAD", render.FormatDuration(int64(s.MAD)))
		row("Min", render.FormatDuration(s.Min))
		row("P25", render.FormatDuration(s.P25))
		row("P75", render.FormatDuration(s.P75))
		row("P90", render.FormatDuration(s.P90))
		row("P95", render.FormatDuration(s.P95))
		row("Max", render.FormatDuration(s.Max))
		row("IQR", render.FormatDuration(s.IQR))
	}
	if len(r.Top) > 0 {
		lines = append(lines, "", "Top days:")
		for i, d := range r.Top {
			lines = append(lines, fmt.Sprintf("  %d. %s  %s", i+1, d.Date, render.FormatDuration(d.TotalSeconds)))
		}
	}
	return render.Block(lines, render.Footer(s.Count, "day"))
}

func (r *DaysStatsResult) Payload() any {
	return struct {
		Start string           `json:"start,omitempty"`
		End   string           `json:"end,omitempty"`
		Stats stats.Summary    `json:"stats"`
		Top   []model.DayTotal `json:"top"`
	}{r.Start, r.End, r.Stats, nonNil(r.Top)}
}

// SearchResult lists matching time records.
type SearchResult struct {
	Records      []model.Record
	TotalSeconds int64
}

func (r *SearchResult) ActionName() string { return ActionSearch.String() }

func (r *SearchResult) Text() string {
	lines := make([]string, len(r.Records))
	for i, rec := range r.Records {
		lines[i] = fmt.Sprintf("%s %s-%s %8s  %s  %s",
			rec.Date, rec.StartTime, rec.EndTime, render.FormatDuration(rec.DurationSeconds),
			rec.Path, render.Truncate(rec.Remark, 60))
	}
	return render.Block(lines, render.FooterWithTotal(len(r.Records), "record", r.TotalSeconds))
}

func (r *SearchResult) Payload() any {
	return struct {
		Items        []model.Record `json:"items"`
		Count        int            `json:"count"`
		TotalSeconds int64          `json:"total_seconds"`
	}{nonNil(r.Records), len(r.Records), r.TotalSeconds}
}

// Suggestion is one scored activity.
type Suggestion struct {
	Path         string `json:"path"`
	Score        int64  `json:"score"`
	UsageCount   int64  `json:"usage_count"`
	TotalSeconds int64  `json:"total_seconds"`
	LastDate     string `json:"last_date"`
}

// SuggestResult ranks recently used activities.
type SuggestResult struct {
	Start        string
	End          string
	LookbackDays int
	Mode         ScoreMode
	Items        []Suggestion
}

func (r *SuggestResult) ActionName() string { return ActionActivitySuggest.String() }

func (r *SuggestResult) Text() string {
	lines := make([]string, len(r.Items))
	for i, s := range r.Items {
		lines[i] = fmt.Sprintf("%2d. %-30s score %-10d %3dx %8s  last %s",
			i+1, s.Path, s.Score, s.UsageCount, render.FormatDuration(s.TotalSeconds), s.LastDate)
	}
	footer := fmt.Sprintf("%s (%s, %s .. %s)",
		render.Footer(len(r.Items), "suggestion"), r.Mode, r.Start, r.End)
	return render.Block(lines, footer)
}

func (r *SuggestResult) Payload() any {
	return struct {
		Start        string       `json:"start"`
		End          string       `json:"end"`
		LookbackDays int          `json:"lookback_days"`
		ScoreMode    ScoreMode    `json:"score_mode"`
		Items        []Suggestion `json:"items"`
	}{r.Start, r.End, r.LookbackDays, r.Mode, nonNil(r.Items)}
}

// ChartResult is a dense daily series for the report chart.
type ChartResult struct {
	Root   string
	Series series.Series
	Roots  []string
}

func (r *ChartResult) ActionName() string { return ActionReportChart.String() }

func (r *ChartResult) Text() string {
	lines := make([]string, 0, len(r.Series.Points)+1)
	if r.Root != "" {
		lines = append(lines, "Root: "+r.Root)
	}
	for _, p := range r.Series.Points {
		lines = append(lines, fmt.Sprintf("%3d  %s  %8s", p.Index, p.Date, render.FormatDuration(p.DurationSeconds)))
	}
	footer := fmt.Sprintf("%d/%d active %s, total %s, average %s",
		r.Series.ActiveDays, r.Series.RangeDays, render.Pluralize("day", r.Series.RangeDays),
		render.FormatDuration(r.Series.TotalSeconds), render.FormatDuration(r.Series.AverageSeconds))
	return render.Block(lines, footer)
}

func (r *ChartResult) Payload() any {
	return struct {
		Root   string        `json:"root,omitempty"`
		Series series.Series `json:"series"`
		Roots  []string      `json:"roots"`
	}{r.Root, r.Series, nonNil(r.Roots)}
}

// TreeResult is the project forest for a period.
type TreeResult struct {
	Start    string
	End      string
	MaxDepth int
	Roots    []*tree.Node
}

func (r *TreeResult) ActionName() string { return ActionTree.String() }

func (r *TreeResult) Text() string {
	var lines []string
	var total int64
	for _, n := range r.Roots {
		total += n.DurationSeconds
	}
	tree.Walk(r.Roots, func(n *tree.Node, depth int) {
		lines = append(lines, fmt.Sprintf("%s%-*s %8s", render.Indent(depth), 24-2*depth, n.Name, render.FormatDuration(n.DurationSeconds)))
	})
	return render.Block(lines, render.FooterWithTotal(len(r.Roots), "root", total))
}

func (r *TreeResult) Payload() any {
	return struct {
		Start    string       `json:"start,omitempty"`
		End      string       `json:"end,omitempty"`
		MaxDepth int          `json:"max_depth"`
		Roots    []*tree.Node `json:"roots"`
	}{r.Start, r.End, r.MaxDepth, nonNil(r.Roots)}
}

// MappingResult lists current project names and their full paths.
type MappingResult struct {
	Mappings []model.ProjectMapping
}

func (r *MappingResult) ActionName() string { return ActionMappingNames.String() }

func (r *MappingResult) Text() string {
	lines := make([]string, len(r.Mappings))
	for i, m := range r.Mappings {
		lines[i] = fmt.Sprintf("%-20s %s", m.Name, m.Path)
	}
	return render.Block(lines, render.Footer(len(r.Mappings), "project"))
}

func (r *MappingResult) Payload() any {
	return struct {
		Items []model.ProjectMapping `json:"items"`
		Count int                    `json:"count"`
	}{nonNil(r.Mappings), len(r.Mappings)}
}

// nonNil keeps empty lists as [] rather than null in JSON.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
