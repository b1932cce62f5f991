package model

import (
	"strconv"
)

// Record is one dataset row
type Record interface {
	// Cells returns the row formatted for table display, in column order
	Cells() []string

	// Numeric returns the value of a numeric column
	Numeric(column string) (float64, bool)

	// Link returns an URL to open for the row, or empty string
	Link() string
}

// Column describes one column of a dataset table
type Column struct {
	Name    string // SQL column name
	Title   string // table header
	SQLType string
	Numeric bool
}

// Recipe is one row of the recipes dataset
type Recipe struct {
	Name     string  `db:"name"`
	Servings int     `db:"servings"`
	Rating   float64 `db:"rating"`
	URL      string  `db:"url"`
}

// Cells returns name, servings, rating and url
func (r *Recipe) Cells() []string {
	return []string{
		r.Name,
		strconv.Itoa(r.Servings),
		strconv.FormatFloat(r.Rating, 'f', -1, 64),
		r.URL,
	}
}

// Numeric returns servings or rating
func (r *Recipe) Numeric(column string) (float64, bool) {
	switch column {
	case "servings":
		return float64(r.Servings), true
	case "rating":
		return r.Rating, true
	}
	return 0, false
}

// Link returns the recipe page URL
func (r *Recipe) Link() string {
	return r.URL
}

// Movie is one row of the movies dataset
type Movie struct {
	Title  string  `db:"title"`
	Year   int     `db:"year"`
	Score  float64 `db:"score"`
	Rating int     `db:"rating"`
}

// Cells returns title, year, score and rating
func (m *Movie) Cells() []string {
	return []string{
		m.Title,
		strconv.Itoa(m.Year),
		strconv.FormatFloat(m.Score, 'f', -1, 64),
		strconv.Itoa(m.Rating),
	}
}

// Numeric returns year, score or rating
func (m *Movie) Numeric(column string) (float64, bool) {
	switch column {
	case "year":
		return float64(m.Year), true
	case "score":
		return m.Score, true
	case "rating":
		return float64(m.Rating), true
	}
	return 0, false
}

// Link is empty for movies
func (m *Movie) Link() string {
	return ""
}
