package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dataset-viewer/internal/display"
	"github.com/ytget/dataset-viewer/internal/model"
)

// newDataTable builds a table of records with a header row. Selecting a row
// whose record has a link calls onLink with it.
func newDataTable(columns []string, records []model.Record, onLink func(string)) *widget.Table {
	rows := display.TableRows(columns, records)

	table := widget.NewTableWithHeaders(
		func() (int, int) {
			return len(rows), len(columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)
			if id.Row < len(rows) && id.Col < len(rows[id.Row]) {
				label.SetText(rows[id.Row][id.Col])
			}
		},
	)
	table.ShowHeaderColumn = false
	table.CreateHeader = func() fyne.CanvasObject {
		l := widget.NewLabel("")
		l.TextStyle = fyne.TextStyle{Bold: true}
		return l
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		if id.Row < 0 && id.Col >= 0 && id.Col < len(columns) {
			obj.(*widget.Label).SetText(columns[id.Col])
		}
	}

	for col, w := range columnWidths(columns, rows) {
		table.SetColumnWidth(col, w)
	}

	table.OnSelected = func(id widget.TableCellID) {
		if id.Row >= 0 && id.Row < len(records) && onLink != nil {
			if link := records[id.Row].Link(); link != "" {
				onLink(link)
			}
		}
		table.UnselectAll()
	}
	return table
}

// columnWidths estimates column widths from the header and the first rows
func columnWidths(columns []string, rows [][]string) []float32 {
	widths := make([]float32, len(columns))
	for i, c := range columns {
		widths[i] = float32(len(c)+2) * TableCharWidth
	}
	for r := 0; r < len(rows) && r < TableWidthSampleRows; r++ {
		for i, cell := range rows[r] {
			if i < len(widths) {
				widths[i] = max(widths[i], float32(len([]rune(cell))+2)*TableCharWidth)
			}
		}
	}
	for i := range widths {
		widths[i] = min(max(widths[i], TableMinColumnWidth), TableMaxColumnWidth)
	}
	return widths
}
