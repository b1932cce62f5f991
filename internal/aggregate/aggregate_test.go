package aggregate

import (
	"errors"
	"math"
	"testing"

	"github.com/ytget/dataset-viewer/internal/model"
)

var recipeRatingLabels = []string{
	"0.0-0.5", "0.5-1.0", "1.1-1.6", "1.6-2.0", "2.1-2.6",
	"2.6-3.0", "3.1-3.6", "3.6-4.0", "4.1-4.6", "4.6-5.0",
}

func countOf(t *testing.T, buckets []model.Bucket, label string) int {
	t.Helper()
	for _, b := range buckets {
		if b.Label == label {
			return b.Count
		}
	}
	t.Fatalf("bucket %q not found", label)
	return 0
}

func TestParseRanges(t *testing.T) {
	ranges, err := ParseRanges("1.1-1.6", "1980-1989")
	if err != nil {
		t.Fatalf("ParseRanges failed: %v", err)
	}

	if ranges[0].Low != 1.1 || ranges[0].High != 1.6 {
		t.Errorf("unexpected first range: %+v", ranges[0])
	}
	if ranges[1].Low != 1980 || ranges[1].High != 1989 {
		t.Errorf("unexpected second range: %+v", ranges[1])
	}

	for _, bad := range []string{"1.5", "a-2", "1-b"} {
		if _, err := ParseRanges(bad); err == nil {
			t.Errorf("expected error for label %q", bad)
		}
	}
}

func TestBucketize_RecipeRatings(t *testing.T) {
	ranges := MustParseRanges(recipeRatingLabels...)
	buckets := Bucketize([]float64{0.3, 3.0, 5.0}, ranges)

	if len(buckets) != len(recipeRatingLabels) {
		t.Fatalf("expected %d buckets, got %d", len(recipeRatingLabels), len(buckets))
	}
	for i, b := range buckets {
		if b.Label != recipeRatingLabels[i] {
			t.Errorf("bucket %d label = %s, expected %s", i, b.Label, recipeRatingLabels[i])
		}
	}

	if countOf(t, buckets, "0.0-0.5") != 1 {
		t.Error("0.3 should fall in 0.0-0.5")
	}
	if countOf(t, buckets, "2.6-3.0") != 1 {
		t.Error("3.0 should fall in 2.6-3.0")
	}
	if countOf(t, buckets, "4.6-5.0") != 1 {
		t.Error("5.0 should fall in 4.6-5.0")
	}
	if model.TotalCount(buckets) != 3 {
		t.Errorf("expected 3 counted values, got %d", model.TotalCount(buckets))
	}
}

func TestBucketize_BoundaryOverlap(t *testing.T) {
	ranges := MustParseRanges(recipeRatingLabels...)

	// 1.6 itself is excluded from 1.6-2.0 by the strict lower bound and
	// lands in 1.1-1.6 through the tolerance.
	buckets := Bucketize([]float64{1.6}, ranges)
	if countOf(t, buckets, "1.1-1.6") != 1 || countOf(t, buckets, "1.6-2.0") != 0 {
		t.Errorf("1.6: got %+v", buckets)
	}

	// Values inside the tolerance band are counted in both neighbours.
	buckets = Bucketize([]float64{1.62}, ranges)
	if countOf(t, buckets, "1.1-1.6") != 1 || countOf(t, buckets, "1.6-2.0") != 1 {
		t.Errorf("1.62 should be double counted, got %+v", buckets)
	}
	if model.TotalCount(buckets) != 2 {
		t.Errorf("expected double count total 2, got %d", model.TotalCount(buckets))
	}

	// Gap between 1.05 and 1.1 and the exact lower edge 0.0 are not counted.
	buckets = Bucketize([]float64{1.07, 0.0}, ranges)
	if model.TotalCount(buckets) != 0 {
		t.Errorf("gap values should not be counted, got %+v", buckets)
	}
}

func TestBucketize_Years(t *testing.T) {
	ranges := MustParseRanges("1980-1989", "1990-1999")
	buckets := Bucketize([]float64{1985, 1989, 1995, 1990}, ranges)

	if countOf(t, buckets, "1980-1989") != 2 {
		t.Errorf("1980-1989 = %d, expected 2", countOf(t, buckets, "1980-1989"))
	}
	// 1990 sits on the strict lower bound of 1990-1999
	if countOf(t, buckets, "1990-1999") != 1 {
		t.Errorf("1990-1999 = %d, expected 1", countOf(t, buckets, "1990-1999"))
	}
}

func TestCategorical(t *testing.T) {
	buckets := Categorical([]float64{1, 1, 3, 5, 5, 5, 2.5}, []int{1, 2, 3, 4, 5})

	expected := []model.Bucket{{Label: "1", Count: 2}, {Label: "2", Count: 0}, {Label: "3", Count: 1}, {Label: "4", Count: 0}, {Label: "5", Count: 3}}
	if len(buckets) != len(expected) {
		t.Fatalf("expected %d buckets, got %d", len(expected), len(buckets))
	}
	for i := range expected {
		if buckets[i] != expected[i] {
			t.Errorf("bucket %d = %+v, expected %+v", i, buckets[i], expected[i])
		}
	}
}

func TestAverage(t *testing.T) {
	avg, err := Average([]float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("Average failed: %v", err)
	}
	if avg != 3.0 {
		t.Errorf("Average = %v, expected 3.0", avg)
	}

	_, err = Average(nil)
	if !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestValues(t *testing.T) {
	records := []model.Record{
		&model.Recipe{Rating: 1.5, Servings: 2},
		&model.Recipe{Rating: 4.0, Servings: 8},
	}

	values := Values(records, "rating")
	if len(values) != 2 || values[0] != 1.5 || values[1] != 4.0 {
		t.Errorf("Values(rating) = %v", values)
	}
	if got := Values(records, "name"); len(got) != 0 {
		t.Errorf("Values(name) should be empty, got %v", got)
	}
}

func TestGroupedStats(t *testing.T) {
	records := []model.Record{
		&model.Movie{Rating: 3, Score: 6},
		&model.Movie{Rating: 1, Score: 5},
		&model.Movie{Rating: 1, Score: 7},
	}

	groups, err := GroupedStats(records, "rating", "score")
	if err != nil {
		t.Fatalf("GroupedStats failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	first := groups[0]
	if first.Key != 1 || first.Avg != 6 || first.Max != 7 || first.Min != 5 {
		t.Errorf("group 1 = %+v, expected {1 6 7 5}", first)
	}
	if groups[1].Key != 3 {
		t.Errorf("groups should be ordered by key, got %+v", groups)
	}
}

func TestGroupedStats_Errors(t *testing.T) {
	if _, err := GroupedStats(nil, "rating", "score"); !errors.Is(err, model.ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	records := []model.Record{&model.Movie{Rating: 1, Score: 5}}
	if _, err := GroupedStats(records, "title", "score"); !errors.Is(err, model.ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestStatSeries(t *testing.T) {
	series := StatSeries([]model.GroupStat{
		{Key: 1, Avg: 6, Max: 7, Min: 5},
		{Key: 2, Avg: 3.5, Max: 4, Min: 3},
	})

	if len(series) != 3 {
		t.Fatalf("expected 3 series, got %d", len(series))
	}
	labels := []string{"average", "maximum", "minimum"}
	for i, s := range series {
		if s.Label != labels[i] {
			t.Errorf("series %d label = %s, expected %s", i, s.Label, labels[i])
		}
		if len(s.Points) != 2 {
			t.Errorf("series %s has %d points, expected 2", s.Label, len(s.Points))
		}
	}
	if math.Abs(series[0].Points[1].Y-3.5) > 1e-9 {
		t.Errorf("average at key 2 = %v, expected 3.5", series[0].Points[1].Y)
	}
}
