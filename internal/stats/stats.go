// Package stats computes descriptive statistics over per-day totals.
package stats

import (
	"math"
	"sort"

	"github.com/xolan/timetrace/internal/model"
)

// Summary contains descriptive statistics for a list of per-day totals (seconds)
type Summary struct {
	Count            int     `json:"count"`
	TotalSeconds     int64   `json:"total_seconds"`
	Mean             float64 `json:"mean"`
	Variance         float64 `json:"variance"` // population variance
	StdDev           float64 `json:"stddev"`
	Median           float64 `json:"median"`
	P25              int64   `json:"p25"`
	P75              int64   `json:"p75"`
	P90              int64   `json:"p90"`
	P95              int64   `json:"p95"`
	Min              int64   `json:"min"`
	Max              int64   `json:"max"`
	IQR              int64   `json:"iqr"`
	MAD              float64 `json:"mad"` // median absolute deviation from the median
	MeanAbsDeviation float64 `json:"mean_abs_deviation"`
}

// Calculate computes a Summary. Zero days must be included in values by the
// caller; an empty slice yields the zero Summary.
func Calculate(values []int64) Summary {
	n := len(values)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]int64, n)
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var total int64
	for _, v := range sorted {
		total += v
	}
	mean := float64(total) / float64(n)

	var sumSq, sumAbs float64
	for _, v := range sorted {
		d := float64(v) - mean
		sumSq += d * d
		sumAbs += math.Abs(d)
	}
	variance := sumSq / float64(n)

	median := medianOfSorted(sorted)
	deviations := make([]float64, n)
	for i, v := range sorted {
		deviations[i] = math.Abs(float64(v) - median)
	}
	sort.Float64s(deviations)

	s := Summary{
		Count:            n,
		TotalSeconds:     total,
		Mean:             mean,
		Variance:         variance,
		StdDev:           math.Sqrt(variance),
		Median:           median,
		P25:              Percentile(sorted, 25),
		P75:              Percentile(sorted, 75),
		P90:              Percentile(sorted, 90),
		P95:              Percentile(sorted, 95),
		Min:              sorted[0],
		Max:              sorted[n-1],
		MAD:              medianOfSortedFloat(deviations),
		MeanAbsDeviation: sumAbs / float64(n),
	}
	s.IQR = s.P75 - s.P25
	return s
}

// Percentile returns the nearest-rank percentile of an ascending slice:
// the value at rank ceil(p/100 * n), clamped to [1, n].
func Percentile(sorted []int64, p int) int64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	rank := (p*n + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}

func medianOfSorted(sorted []int64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return (float64(sorted[n/2-1]) + float64(sorted[n/2])) / 2
}

func medianOfSortedFloat(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Values extracts the totals from day rows, preserving order.
func Values(rows []model.DayTotal) []int64 {
	out := make([]int64, len(rows))
	for i, r := range rows {
		out[i] = r.TotalSeconds
	}
	return out
}

// TopN returns the n days with the largest totals, ties broken by date.
// n <= 0 returns nil.
func TopN(rows []model.DayTotal, n int) []model.DayTotal {
	if n <= 0 || len(rows) == 0 {
		return nil
	}
	sorted := make([]model.DayTotal, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalSeconds != sorted[j].TotalSeconds {
			return sorted[i].TotalSeconds > sorted[j].TotalSeconds
		}
		return sorted[i].Date < sorted[j].Date
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}
