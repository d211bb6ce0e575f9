// Package filter holds the request-scoped predicate set shared by every query.
package filter

import (
	"github.com/xolan/timetrace/internal/apperr"
	"github.com/xolan/timetrace/internal/timeutil"
)

// Filter represents the optional predicates a query may apply.
// All fields are independent; zero values mean "not present".
type Filter struct {
	Year      int
	Month     int
	From      string // inclusive lower date bound, any NormalizeBoundary shape
	To        string // inclusive upper date bound
	Remark    string // contains match on the activity remark
	DayRemark string // contains match on the day remark
	Project   string // legacy contains match on the current project name
	Root      string // exact root or root_ prefix on the path snapshot
	Exercise  *int
	Status    *int
	Overnight bool
	Reverse   bool
	Limit     int
}

// IsEmpty returns true if no predicate or modifier is set
func (f Filter) IsEmpty() bool {
	return f.Year == 0 && f.Month == 0 && f.From == "" && f.To == "" &&
		!f.HasRecordPredicates() && f.DayRemark == "" &&
		f.Exercise == nil && f.Status == nil &&
		!f.Overnight && !f.Reverse && f.Limit == 0
}

// HasRecordPredicates reports whether any predicate targets time records
// rather than days.
func (f Filter) HasRecordPredicates() bool {
	return f.Remark != "" || f.Project != "" || f.Root != ""
}

// HasTextPredicates reports whether a keyword or root filter is present.
func (f Filter) HasTextPredicates() bool {
	return f.HasRecordPredicates() || f.DayRemark != ""
}

// Normalize validates the filter and rewrites From/To to ISO dates.
// From is normalized as a start boundary and To as an end boundary, so
// "--from 202602 --to 202602" covers the whole month.
func (f Filter) Normalize() (Filter, error) {
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return f, apperr.Validationf("invalid month %d: must be 1-12", f.Month)
	}
	if f.Year < 0 {
		return f, apperr.Validationf("invalid year %d", f.Year)
	}
	if f.Limit < 0 {
		return f, apperr.Validationf("invalid limit %d: must be positive", f.Limit)
	}

	var err error
	if f.From != "" {
		if f.From, err = timeutil.NormalizeBoundary(f.From, false); err != nil {
			return f, err
		}
	}
	if f.To != "" {
		if f.To, err = timeutil.NormalizeBoundary(f.To, true); err != nil {
			return f, err
		}
	}
	if f.From != "" && f.To != "" {
		if err := timeutil.ValidateRange(f.From, f.To); err != nil {
			return f, err
		}
	}
	return f, nil
}

// WithRange returns a copy of f whose date scope is exactly [start, end].
// Year and month predicates are dropped because the range overrides them.
func (f Filter) WithRange(start, end string) Filter {
	f.Year = 0
	f.Month = 0
	f.From = start
	f.To = end
	return f
}

// IntPtr is a convenience for setting the flag predicates.
func IntPtr(v int) *int {
	return &v
}
