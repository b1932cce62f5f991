// Package aggregate computes averages, bucketed counts and grouped statistics
// over dataset records for the chart views.
package aggregate

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/ytget/dataset-viewer/internal/model"
)

// BoundaryTolerance widens the upper bound of every range to absorb float
// rounding at bucket edges. Adjacent ranges therefore overlap slightly.
const BoundaryTolerance = 0.05

// Range is a labelled open interval (Low, High+BoundaryTolerance)
type Range struct {
	Label string
	Low   float64
	High  float64
}

// Contains reports whether v falls inside the range
func (r Range) Contains(v float64) bool {
	return r.Low < v && v < r.High+BoundaryTolerance
}

// ParseRanges builds ranges from labels formatted as "low-high",
// e.g. "1.1-1.6" or "1980-1989".
func ParseRanges(labels ...string) ([]Range, error) {
	ranges := make([]Range, 0, len(labels))
	for _, label := range labels {
		lowStr, highStr, ok := strings.Cut(label, "-")
		if !ok {
			return nil, fmt.Errorf("range label %q: missing separator", label)
		}
		low, err := strconv.ParseFloat(strings.TrimSpace(lowStr), 64)
		if err != nil {
			return nil, fmt.Errorf("range label %q: %w", label, err)
		}
		high, err := strconv.ParseFloat(strings.TrimSpace(highStr), 64)
		if err != nil {
			return nil, fmt.Errorf("range label %q: %w", label, err)
		}
		ranges = append(ranges, Range{Label: label, Low: low, High: high})
	}
	return ranges, nil
}

// MustParseRanges is ParseRanges for fixed label sets known at compile time
func MustParseRanges(labels ...string) []Range {
	ranges, err := ParseRanges(labels...)
	if err != nil {
		panic(err)
	}
	return ranges
}

// Bucketize counts values per range. A value increments every range that
// contains it, so values in an overlap are counted twice and values in a
// gap are not counted at all. Output keeps the order of ranges.
func Bucketize(values []float64, ranges []Range) []model.Bucket {
	buckets := make([]model.Bucket, len(ranges))
	for i, r := range ranges {
		buckets[i].Label = r.Label
	}
	for _, v := range values {
		for i, r := range ranges {
			if r.Contains(v) {
				buckets[i].Count++
			}
		}
	}
	return buckets
}

// Categorical counts values equal to each category
func Categorical(values []float64, categories []int) []model.Bucket {
	buckets := make([]model.Bucket, len(categories))
	for i, c := range categories {
		buckets[i].Label = strconv.Itoa(c)
	}
	for _, v := range values {
		for i, c := range categories {
			if v == float64(c) {
				buckets[i].Count++
			}
		}
	}
	return buckets
}

// Average returns the arithmetic mean of values
func Average(values []float64) (float64, error) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, mapStatsError(err)
	}
	return mean, nil
}

// Values extracts a numeric column from records, skipping rows where the
// column is not numeric.
func Values(records []model.Record, column string) []float64 {
	values := make([]float64, 0, len(records))
	for _, r := range records {
		if v, ok := r.Numeric(column); ok {
			values = append(values, v)
		}
	}
	return values
}

// GroupedStats groups records by groupColumn and computes avg/max/min of
// valueColumn per group, ordered by group key ascending.
func GroupedStats(records []model.Record, groupColumn, valueColumn string) ([]model.GroupStat, error) {
	if len(records) == 0 {
		return nil, model.ErrEmptyInput
	}

	groups := make(map[float64][]float64)
	for _, r := range records {
		key, ok := r.Numeric(groupColumn)
		if !ok {
			return nil, fmt.Errorf("group by %q: %w", groupColumn, model.ErrUnknownColumn)
		}
		value, ok := r.Numeric(valueColumn)
		if !ok {
			return nil, fmt.Errorf("value %q: %w", valueColumn, model.ErrUnknownColumn)
		}
		groups[key] = append(groups[key], value)
	}

	keys := make([]float64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	result := make([]model.GroupStat, 0, len(keys))
	for _, k := range keys {
		data := stats.Float64Data(groups[k])
		avg, err := Average(data)
		if err != nil {
			return nil, err
		}
		maxV, err := data.Max()
		if err != nil {
			return nil, mapStatsError(err)
		}
		minV, err := data.Min()
		if err != nil {
			return nil, mapStatsError(err)
		}
		result = append(result, model.GroupStat{Key: k, Avg: avg, Max: maxV, Min: minV})
	}
	return result, nil
}

// StatSeries turns grouped stats into average/maximum/minimum line series
func StatSeries(groups []model.GroupStat) []model.Series {
	avg := model.Series{Label: "average", Points: make([]model.Point, 0, len(groups))}
	maxS := model.Series{Label: "maximum", Points: make([]model.Point, 0, len(groups))}
	minS := model.Series{Label: "minimum", Points: make([]model.Point, 0, len(groups))}
	for _, g := range groups {
		avg.Points = append(avg.Points, model.Point{X: g.Key, Y: g.Avg})
		maxS.Points = append(maxS.Points, model.Point{X: g.Key, Y: g.Max})
		minS.Points = append(minS.Points, model.Point{X: g.Key, Y: g.Min})
	}
	return []model.Series{avg, maxS, minS}
}

func mapStatsError(err error) error {
	if errors.Is(err, stats.ErrEmptyInput) {
		return model.ErrEmptyInput
	}
	return err
}
