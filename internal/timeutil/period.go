package timeutil

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xolan/timetrace/internal/apperr"
)

// Named periods accepted by ExpandPeriod.
const (
	PeriodDay    = "day"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodYear   = "year"
	PeriodRecent = "recent"
	PeriodRange  = "range"
)

// SupportedPeriods lists the period keywords in the order they are documented.
var SupportedPeriods = []string{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodRecent, PeriodRange}

var isoWeekRe = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// ExpandPeriod resolves a named period into an inclusive [start, end] pair.
//
// An empty arg selects the period containing today for day, week, month and
// year, and defaultRecent days for recent. range always needs "start|end" or
// "start,end".
func ExpandPeriod(kind, arg string, today time.Time, defaultRecent int) (start, end string, err error) {
	arg = strings.TrimSpace(arg)
	today = DateOf(today)

	switch strings.ToLower(strings.TrimSpace(kind)) {
	case PeriodDay:
		if arg == "" {
			return FormatDate(today), FormatDate(today), nil
		}
		if !isoDateRe.MatchString(arg) && !(digitsRe.MatchString(arg) && len(arg) == 8) {
			return "", "", apperr.Validationf("invalid day '%s' (use YYYYMMDD or YYYY-MM-DD)", arg)
		}
		day, err := NormalizeBoundary(arg, false)
		if err != nil {
			return "", "", err
		}
		return day, day, nil

	case PeriodWeek:
		if arg == "" {
			return FormatDate(StartOfWeek(today)), FormatDate(EndOfWeek(today)), nil
		}
		monday, err := ParseISOWeek(arg)
		if err != nil {
			return "", "", err
		}
		return FormatDate(monday), FormatDate(monday.AddDate(0, 0, 6)), nil

	case PeriodMonth:
		if arg == "" {
			return FormatDate(StartOfMonth(today)), FormatDate(EndOfMonth(today)), nil
		}
		compact := strings.ReplaceAll(arg, "-", "")
		if !digitsRe.MatchString(compact) || len(compact) != 6 {
			return "", "", apperr.Validationf("invalid month '%s' (use YYYYMM or YYYY-MM)", arg)
		}
		return boundaryPair(compact)

	case PeriodYear:
		if arg == "" {
			arg = strconv.Itoa(today.Year())
		}
		if !digitsRe.MatchString(arg) || len(arg) != 4 {
			return "", "", apperr.Validationf("invalid year '%s' (use YYYY)", arg)
		}
		return boundaryPair(arg)

	case PeriodRecent:
		days := defaultRecent
		if arg != "" {
			n, convErr := strconv.Atoi(arg)
			if convErr != nil {
				return "", "", apperr.Validationf("invalid recent day count '%s': must be a positive integer", arg)
			}
			days = n
		}
		return ResolveRolling(today, days)

	case PeriodRange:
		return parseRangeArg(arg)

	default:
		return "", "", apperr.Validationf("unknown period '%s' (supported: %s)", kind, strings.Join(SupportedPeriods, ", "))
	}
}

// ParseISOWeek parses "YYYY-Www" and returns the Monday of that ISO week.
func ParseISOWeek(input string) (time.Time, error) {
	m := isoWeekRe.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return time.Time{}, apperr.Validationf("invalid week '%s' (use YYYY-Www, e.g., 2026-W07)", input)
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return time.Time{}, apperr.Validationf("invalid week '%s': week must be 01-53", input)
	}

	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := StartOfWeek(jan4).AddDate(0, 0, (week-1)*7)

	if y, w := monday.ISOWeek(); y != year || w != week {
		return time.Time{}, apperr.Validationf("invalid week '%s': %d has no week %d", input, year, week)
	}
	return monday, nil
}

func boundaryPair(arg string) (string, string, error) {
	start, err := NormalizeBoundary(arg, false)
	if err != nil {
		return "", "", err
	}
	end, err := NormalizeBoundary(arg, true)
	if err != nil {
		return "", "", err
	}
	return start, end, nil
}

func parseRangeArg(arg string) (string, string, error) {
	sep := "|"
	if !strings.Contains(arg, sep) {
		sep = ","
	}
	parts := strings.Split(arg, sep)
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", apperr.Validationf("invalid range '%s' (use start|end or start,end)", arg)
	}

	start, err := NormalizeBoundary(parts[0], false)
	if err != nil {
		return "", "", err
	}
	end, err := NormalizeBoundary(parts[1], true)
	if err != nil {
		return "", "", err
	}
	if err := ValidateRange(start, end); err != nil {
		return "", "", err
	}
	return start, end, nil
}
