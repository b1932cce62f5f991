package model

import (
	"strconv"
	"time"
)

// Bucket is a labelled count for bar charts
type Bucket struct {
	Label string
	Count int
}

// GroupStat holds avg/max/min of a value column for one group key
type GroupStat struct {
	Key float64
	Avg float64
	Max float64
	Min float64
}

// Point is one (x, y) sample of a line series
type Point struct {
	X float64
	Y float64
}

// Series is a named line of a plot
type Series struct {
	Label  string
	Points []Point
}

// VisualizationKind tells the presenter which renderer to use
type VisualizationKind string

const (
	VisualizationTable VisualizationKind = "table"
	VisualizationBar   VisualizationKind = "bar"
	VisualizationLine  VisualizationKind = "line"
)

// Visualization is the computed content of one view, ready to render
type Visualization struct {
	Kind   VisualizationKind
	Title  string
	XLabel string
	YLabel string

	// Table
	Columns []string
	Records []Record

	// Bar chart
	Buckets []Bucket

	// Line chart
	Series []Series
}

// DatasetSummary describes a successful fetch
type DatasetSummary struct {
	ID      string
	Records int
	Source  string // base name of the source URL path
	Elapsed time.Duration
}

// ClearSummary describes a successful clear
type ClearSummary struct {
	Elapsed time.Duration
}

// TotalCount returns the sum of all bucket counts
func TotalCount(buckets []Bucket) int {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return total
}

// SecondsString formats a duration the way the status line shows it
func SecondsString(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 4, 64)
}
