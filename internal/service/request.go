package service

import (
	"github.com/xolan/timetrace/internal/filter"
	"github.com/xolan/timetrace/internal/render"
)

// Request is one engine call. Zero values mean "not given"; numeric knobs
// fall back to Settings when zero.
type Request struct {
	Action     Action
	OutputMode render.Mode

	filter.Filter

	TopN           int
	LookbackDays   int
	ActivityPrefix string
	ScoreMode      ScoreMode

	Period    string // day|week|month|year|recent|range
	PeriodArg string
	MaxDepth  int // 0 = default, -1 = unlimited
}

// Settings are the fallbacks for knobs a Request leaves at zero.
type Settings struct {
	ChartLookbackDays   int
	RecentDays          int
	SuggestLookbackDays int
	SuggestTopN         int
	SuggestScoreMode    ScoreMode
	TreeMaxDepth        int
	StatsTopN           int
}

// DefaultSettings returns the built-in fallbacks.
func DefaultSettings() Settings {
	return Settings{
		ChartLookbackDays:   7,
		RecentDays:          7,
		SuggestLookbackDays: 10,
		SuggestTopN:         5,
		SuggestScoreMode:    ScoreFrequency,
		TreeMaxDepth:        -1,
		StatsTopN:           0,
	}
}
