// Package series turns sparse per-day totals into a dense daily series.
package series

import (
	"time"

	"github.com/xolan/timetrace/internal/model"
	"github.com/xolan/timetrace/internal/timeutil"
)

// BaseIndex is the index of the first point; each later day adds one.
const BaseIndex = 1

// Point is one calendar day of the series.
type Point struct {
	Index           int    `json:"index"`
	Date            string `json:"date"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// Series is a gap-free run of days plus range aggregates.
type Series struct {
	Start          string  `json:"start"`
	End            string  `json:"end"`
	Points         []Point `json:"points"`
	TotalSeconds   int64   `json:"total_duration_seconds"`
	ActiveDays     int     `json:"active_days"`
	RangeDays      int     `json:"range_days"`
	AverageSeconds int64   `json:"average_duration_seconds"` // truncated TotalSeconds / RangeDays
}

// Build fills [start, end] with one point per day. Rows outside the range are
// ignored and duplicate dates are summed.
func Build(rows []model.DayTotal, start, end string) (Series, error) {
	if err := timeutil.ValidateRange(start, end); err != nil {
		return Series{}, err
	}
	startDate, _ := timeutil.ParseDate(start)
	endDate, _ := timeutil.ParseDate(end)

	byDate := make(map[string]int64, len(rows))
	for _, r := range rows {
		byDate[r.Date] += r.TotalSeconds
	}

	s := Series{
		Start:     start,
		End:       end,
		RangeDays: timeutil.DayCount(startDate, endDate),
	}
	s.Points = make([]Point, 0, s.RangeDays)

	index := BaseIndex
	timeutil.EachDay(startDate, endDate, func(d time.Time) {
		date := timeutil.FormatDate(d)
		total := byDate[date]
		s.Points = append(s.Points, Point{Index: index, Date: date, DurationSeconds: total})
		s.TotalSeconds += total
		if total > 0 {
			s.ActiveDays++
		}
		index++
	})

	s.AverageSeconds = s.TotalSeconds / int64(s.RangeDays)
	return s, nil
}
