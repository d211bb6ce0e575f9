package timeutil

import (
	"time"

	"github.com/xolan/timetrace/internal/apperr"
)

// ValidateRange checks that both bounds are calendar dates and start <= end.
func ValidateRange(start, end string) error {
	s, err := ParseDate(start)
	if err != nil {
		return err
	}
	e, err := ParseDate(end)
	if err != nil {
		return err
	}
	if s.After(e) {
		return apperr.Validationf("start date (%s) is after end date (%s)", start, end)
	}
	return nil
}

// ResolveExplicit resolves an explicit from/to pair. Both or neither must be
// given: ok is false when both are empty and the caller should fall back to
// a rolling window.
func ResolveExplicit(from, to string) (start, end string, ok bool, err error) {
	switch {
	case from == "" && to == "":
		return "", "", false, nil
	case from == "":
		return "", "", false, apperr.Validationf("--to given without --from (both or neither are required)")
	case to == "":
		return "", "", false, apperr.Validationf("--from given without --to (both or neither are required)")
	}

	start, err = NormalizeBoundary(from, false)
	if err != nil {
		return "", "", false, err
	}
	end, err = NormalizeBoundary(to, true)
	if err != nil {
		return "", "", false, err
	}
	if err := ValidateRange(start, end); err != nil {
		return "", "", false, err
	}
	return start, end, true, nil
}

// ResolveRolling returns the inclusive window of lookbackDays days ending at
// anchor: end = anchor, start = anchor - (lookbackDays - 1).
func ResolveRolling(anchor time.Time, lookbackDays int) (start, end string, err error) {
	if lookbackDays <= 0 {
		return "", "", apperr.Validationf("invalid lookback: must be positive, got %d", lookbackDays)
	}
	endDate := DateOf(anchor)
	startDate := endDate.AddDate(0, 0, -(lookbackDays - 1))
	return FormatDate(startDate), FormatDate(endDate), nil
}
