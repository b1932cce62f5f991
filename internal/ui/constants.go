package ui

// Layout sizing
const (
	ChartMinWidth  float32 = 480
	ChartMinHeight float32 = 320

	// Pixel size charts are rendered at before scaling into the content area
	ChartRenderWidth  = 900
	ChartRenderHeight = 560

	TableCharWidth      float32 = 8
	TableMinColumnWidth float32 = 48
	TableMaxColumnWidth float32 = 420

	// Rows sampled when sizing table columns
	TableWidthSampleRows = 200
)

// Text fragments
const (
	IconLanguage = "🌐"
	IconSettings = "⚙"
)
