// Package model holds the typed rows the repository maps query results into.
package model

import "fmt"

// YearMonth is one (year, month) pair.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// DayTotal is the tracked total of one date.
type DayTotal struct {
	Date         string `json:"date"`
	TotalSeconds int64  `json:"total_seconds"`
}

// PathTotal is the tracked total of one project path snapshot.
type PathTotal struct {
	Path         string `json:"path"`
	TotalSeconds int64  `json:"total_seconds"`
}

// Record is one time record as returned by search.
type Record struct {
	Date            string `json:"date"`
	StartTime       string `json:"start"`
	EndTime         string `json:"end"`
	DurationSeconds int64  `json:"duration_seconds"`
	Remark          string `json:"remark"`
	Path            string `json:"path"`
}

// ActivityUsage aggregates the records of one activity on one date.
type ActivityUsage struct {
	Path         string
	Date         string
	UsageCount   int64
	TotalSeconds int64
}

// ProjectMapping pairs a current project name with its full path.
type ProjectMapping struct {
	Name string `json:"name"`
	Path string `json:"path"`
}
