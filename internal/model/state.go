package model

// DisplayState tells which visualization panel is currently mounted
type DisplayState string

const (
	// StateNone means no panel is mounted
	StateNone DisplayState = "none"

	// StateTable is the raw dataset table
	StateTable DisplayState = "table"

	// StateRatingsGraph is the recipe rating distribution bar chart
	StateRatingsGraph DisplayState = "ratings_graph"

	// StateYearGraph is the movie decade distribution bar chart
	StateYearGraph DisplayState = "year_graph"

	// StateRatingGraph is the movie rating distribution bar chart
	StateRatingGraph DisplayState = "rating_graph"

	// StateScoreRatingPlot is the movie score-per-rating line plot
	StateScoreRatingPlot DisplayState = "score_rating_plot"
)

// String returns the string representation of DisplayState
func (ds DisplayState) String() string {
	return string(ds)
}

// IsMounted returns true if a panel is shown
func (ds DisplayState) IsMounted() bool {
	return ds != StateNone && ds != ""
}
