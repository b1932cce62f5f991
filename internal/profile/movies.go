package profile

import (
	"encoding/json"

	"github.com/ytget/dataset-viewer/internal/aggregate"
	"github.com/ytget/dataset-viewer/internal/model"
)

// MovieDecadeRanges are the year buckets of the movies bar chart
var MovieDecadeRanges = aggregate.MustParseRanges(
	"1940-1949", "1950-1959", "1960-1969", "1970-1979", "1980-1989",
	"1990-1999", "2000-2009", "2010-2019", "2020-2029",
)

// MovieRatings are the rating categories of the movies bar chart
var MovieRatings = []int{1, 2, 3, 4, 5}

type movieJSON struct {
	Title  string  `json:"title"`
	Year   int     `json:"year"`
	Score  float64 `json:"score"`
	Rating int     `json:"rating"`
}

// Movies returns the movies profile
func Movies() *Profile {
	p := &Profile{
		Name:      NameMovies,
		SourceURL: MoviesSourceURL,
		Table:     "movies",
		Columns: []model.Column{
			{Name: "title", Title: "Title", SQLType: "TEXT"},
			{Name: "year", Title: "Year", SQLType: "INTEGER", Numeric: true},
			{Name: "score", Title: "Score", SQLType: "REAL", Numeric: true},
			{Name: "rating", Title: "Rating", SQLType: "INTEGER", Numeric: true},
		},
		NumberRows: true,
		Averages:   []string{"rating", "score"},
		newRecord:  func() model.Record { return &model.Movie{} },
		decode:     decodeMovie,
	}
	p.Views = []View{
		tableView(p),
		{
			State: model.StateYearGraph,
			Build: buildMovieYears,
		},
		{
			State: model.StateRatingGraph,
			Build: buildMovieRatings,
		},
		{
			State: model.StateScoreRatingPlot,
			Build: buildScoreRatingPlot,
		},
	}
	return p
}

func decodeMovie(raw json.RawMessage) (model.Record, error) {
	var m movieJSON
	if err := decodeObject(raw, &m, "title", "year", "score", "rating"); err != nil {
		return nil, err
	}
	return &model.Movie{Title: m.Title, Year: m.Year, Score: m.Score, Rating: m.Rating}, nil
}

func buildMovieYears(records []model.Record) (model.Visualization, error) {
	return model.Visualization{
		Kind:    model.VisualizationBar,
		Title:   "Distribution of Movies by Year",
		XLabel:  "Year",
		YLabel:  "Count",
		Buckets: aggregate.Bucketize(aggregate.Values(records, "year"), MovieDecadeRanges),
	}, nil
}

func buildMovieRatings(records []model.Record) (model.Visualization, error) {
	return model.Visualization{
		Kind:    model.VisualizationBar,
		Title:   "Distribution of Movies by Rating",
		XLabel:  "Rating",
		YLabel:  "Count",
		Buckets: aggregate.Categorical(aggregate.Values(records, "rating"), MovieRatings),
	}, nil
}

func buildScoreRatingPlot(records []model.Record) (model.Visualization, error) {
	groups, err := aggregate.GroupedStats(records, "rating", "score")
	if err != nil {
		return model.Visualization{}, err
	}
	return model.Visualization{
		Kind:   model.VisualizationLine,
		Title:  "Average Score for each Rating",
		XLabel: "Rating",
		YLabel: "Score",
		Series: aggregate.StatSeries(groups),
	}, nil
}
