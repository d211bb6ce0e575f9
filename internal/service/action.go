package service

import (
	"strings"

	"github.com/xolan/timetrace/internal/apperr"
)

// Action is the closed set of queries the engine answers.
type Action int

const (
	ActionUnknown Action = iota
	ActionYears
	ActionMonths
	ActionDays
	ActionDaysDuration
	ActionDaysStats
	ActionSearch
	ActionActivitySuggest
	ActionReportChart
	ActionTree
	// ActionMappingNames is answered before dispatch by MappingNames.
	ActionMappingNames
)

var actionTokens = map[Action]string{
	ActionYears:           "years",
	ActionMonths:          "months",
	ActionDays:            "days",
	ActionDaysDuration:    "days_duration",
	ActionDaysStats:       "days_stats",
	ActionSearch:          "search",
	ActionActivitySuggest: "activity_suggest",
	ActionReportChart:     "report_chart",
	ActionTree:            "tree",
	ActionMappingNames:    "mapping_names",
}

// String returns the stable lower_snake_case token of the action
func (a Action) String() string {
	if tok, ok := actionTokens[a]; ok {
		return tok
	}
	return "unknown"
}

// ParseAction maps a token back to its Action. Dashes are accepted in place
// of underscores so CLI spellings like "days-stats" work.
func ParseAction(s string) (Action, error) {
	tok := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for a, t := range actionTokens {
		if t == tok {
			return a, nil
		}
	}
	return ActionUnknown, apperr.Validationf("unknown action '%s'", s)
}

// ScoreMode selects how activity suggestions are weighted.
type ScoreMode string

const (
	// ScoreFrequency sums (lookback - daysAgo) once per record.
	ScoreFrequency ScoreMode = "frequency"
	// ScoreDuration sums durationSeconds * (lookback - daysAgo).
	ScoreDuration ScoreMode = "duration"
)

// ParseScoreMode validates a score mode. An empty string returns "" so the
// caller can apply its default.
func ParseScoreMode(s string) (ScoreMode, error) {
	switch ScoreMode(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return "", nil
	case ScoreFrequency:
		return ScoreFrequency, nil
	case ScoreDuration:
		return ScoreDuration, nil
	default:
		return "", apperr.Validationf("unknown score mode '%s' (expected frequency or duration)", s)
	}
}
