package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dataset-viewer/internal/model"
)

func TestDataTableOpensLink(t *testing.T) {
	test.NewApp()

	records := []model.Record{
		&model.Recipe{Name: "Pancakes", Servings: 4, Rating: 4.5, URL: "https://example.com/pancakes"},
		&model.Recipe{Name: "Soup", Servings: 6, Rating: 3.5, URL: "https://example.com/soup"},
	}

	var opened string
	table := newDataTable([]string{"Name", "Servings", "Rating", "Url"}, records, func(link string) {
		opened = link
	})

	rows, cols := table.Length()
	if rows != 2 || cols != 4 {
		t.Fatalf("table size = %dx%d", rows, cols)
	}

	table.Select(widget.TableCellID{Row: 1, Col: 0})
	if opened != "https://example.com/soup" {
		t.Errorf("opened = %q", opened)
	}
}

func TestDataTableMovieNoLink(t *testing.T) {
	test.NewApp()

	records := []model.Record{&model.Movie{Title: "Heat", Year: 1995, Score: 8.2, Rating: 4}}
	called := false
	table := newDataTable([]string{"ID", "Title", "Year", "Score", "Rating"}, records, func(string) {
		called = true
	})

	table.Select(widget.TableCellID{Row: 0, Col: 1})
	if called {
		t.Error("Movies have no link to open")
	}
}

func TestColumnWidths(t *testing.T) {
	widths := columnWidths(
		[]string{"ID", "Title"},
		[][]string{{"1", "A very long movie title that goes on and on and on and on and on and on"}},
	)

	if widths[0] != TableMinColumnWidth {
		t.Errorf("ID width = %v, want min %v", widths[0], TableMinColumnWidth)
	}
	if widths[1] != TableMaxColumnWidth {
		t.Errorf("Title width = %v, want max %v", widths[1], TableMaxColumnWidth)
	}
}
