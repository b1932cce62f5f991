package display

import "github.com/ytget/dataset-viewer/internal/model"

// Presenter renders views and messages. The GUI and the console implement it.
type Presenter interface {
	RenderTable(columns []string, records []model.Record)
	RenderBarChart(title, xLabel, yLabel string, buckets []model.Bucket)
	RenderLineChart(title, xLabel, yLabel string, series []model.Series)

	// ShowStatus replaces the one-line status message
	ShowStatus(message string)
	// ShowAggregate replaces the aggregate result line
	ShowAggregate(message string)
	// SetSourceLabel shows the name of the loaded dataset
	SetSourceLabel(label string)

	// UnmountActiveView removes the mounted view, if any
	UnmountActiveView()
}

// DataChecker reports whether a dataset is loaded
type DataChecker interface {
	Loaded() bool
}

// Render draws a visualization through the presenter
func Render(p Presenter, v model.Visualization) {
	switch v.Kind {
	case model.VisualizationTable:
		p.RenderTable(v.Columns, v.Records)
	case model.VisualizationBar:
		p.RenderBarChart(v.Title, v.XLabel, v.YLabel, v.Buckets)
	case model.VisualizationLine:
		p.RenderLineChart(v.Title, v.XLabel, v.YLabel, v.Series)
	}
}
