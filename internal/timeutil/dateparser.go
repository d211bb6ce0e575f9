package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/timetrace/internal/apperr"
)

// DateLayout is the ISO calendar date format used for every stored date.
const DateLayout = "2006-01-02"

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	digitsRe     = regexp.MustCompile(`^\d+$`)
	isoPartialRe = regexp.MustCompile(`^\d{4}-\d{1,2}$`)
)

// ParseDate parses a strict YYYY-MM-DD date at midnight UTC.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, apperr.Validationf("date cannot be empty (use YYYY-MM-DD, e.g., 2026-02-01)")
	}
	if !isoDateRe.MatchString(input) {
		return time.Time{}, buildDateParseError(input)
	}
	t, err := time.ParseInLocation(DateLayout, input, time.UTC)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid date '%s': not a calendar date", input)
	}
	return t, nil
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeBoundary turns a loose boundary into an ISO date.
//
// Accepted shapes:
//   - "2026"       year: Jan 1, or Dec 31 when isEnd
//   - "202602"     year+month: first day, or last day when isEnd
//   - "20260201"   exact date
//   - "2026-02-01" already ISO
//
// Anything else is a validation error.
func NormalizeBoundary(text string, isEnd bool) (string, error) {
	s := strings.TrimSpace(text)
	if isoDateRe.MatchString(s) {
		t, err := ParseDate(s)
		if err != nil {
			return "", err
		}
		return FormatDate(t), nil
	}
	if !digitsRe.MatchString(s) {
		return "", buildDateParseError(s)
	}

	switch len(s) {
	case 4:
		year, _ := strconv.Atoi(s)
		if isEnd {
			return FormatDate(time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)), nil
		}
		return FormatDate(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)), nil
	case 6:
		year, _ := strconv.Atoi(s[:4])
		month, _ := strconv.Atoi(s[4:])
		if month < 1 || month > 12 {
			return "", apperr.Validationf("invalid month in '%s': must be 01-12", s)
		}
		first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		if isEnd {
			return FormatDate(EndOfMonth(first)), nil
		}
		return FormatDate(first), nil
	case 8:
		t, err := time.ParseInLocation("20060102", s, time.UTC)
		if err != nil {
			return "", apperr.Validationf("invalid date '%s': not a calendar date", s)
		}
		return FormatDate(t), nil
	default:
		return "", apperr.Validationf("invalid date boundary '%s' (use YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD)", s)
	}
}

// buildDateParseError creates a helpful error message based on the input pattern
func buildDateParseError(input string) error {
	switch {
	case input == "":
		return apperr.Validationf("date cannot be empty (use YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD)")
	case isoPartialRe.MatchString(input):
		return apperr.Validationf("incomplete date '%s': missing day (use YYYY-MM-DD or YYYYMM)", input)
	case strings.Contains(input, "/"):
		return apperr.Validationf("invalid date format '%s' (slashes are not supported, use YYYY-MM-DD)", input)
	default:
		return apperr.Validationf("invalid date format '%s' (use YYYY, YYYYMM, YYYYMMDD or YYYY-MM-DD)", input)
	}
}
