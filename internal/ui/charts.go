package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/rs/zerolog"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ytget/dataset-viewer/internal/model"
)

// seriesColors are used in order for line series
var seriesColors = []drawing.Color{
	{R: 25, G: 118, B: 210, A: 255},
	{R: 198, G: 40, B: 40, A: 255},
	{R: 46, G: 160, B: 67, A: 255},
	{R: 245, G: 124, B: 0, A: 255},
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func chartBackground(p Palette) chart.Style {
	return chart.Style{
		FillColor: toDrawing(p.Background),
		Padding:   chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16},
	}
}

func axisStyle(p Palette) chart.Style {
	return chart.Style{
		FontColor:   toDrawing(p.Foreground),
		StrokeColor: toDrawing(p.Foreground),
	}
}

// renderBarChart draws one bar per bucket
func renderBarChart(title, xLabel, yLabel string, buckets []model.Bucket, p Palette, log zerolog.Logger) image.Image {
	bars := make([]chart.Value, len(buckets))
	maxCount := 0
	for i, b := range buckets {
		bars[i] = chart.Value{
			Label: b.Label,
			Value: float64(b.Count),
			Style: chart.Style{
				FillColor:   seriesColors[0],
				StrokeColor: seriesColors[0],
			},
		}
		maxCount = max(maxCount, b.Count)
	}

	barWidth := 40
	if n := len(buckets); n > 0 {
		barWidth = max(12, min(60, ChartRenderWidth/(2*n)))
	}

	ch := chart.BarChart{
		Title:      title + " (" + xLabel + ")",
		TitleStyle: chart.Style{FontColor: toDrawing(p.Foreground)},
		Background: chartBackground(p),
		Canvas:     chart.Style{FillColor: toDrawing(p.Background)},
		Width:      ChartRenderWidth,
		Height:     ChartRenderHeight,
		BarWidth:   barWidth,
		BarSpacing: 20,
		XAxis:      axisStyle(p),
		YAxis: chart.YAxis{
			Name:      yLabel,
			NameStyle: axisStyle(p),
			Style:     axisStyle(p),
			// An all-zero dataset still needs a non-empty range
			Range: &chart.ContinuousRange{Min: 0, Max: math.Max(1, float64(maxCount))},
		},
		Bars: bars,
	}

	return encodeChart(ch.Render, log)
}

// seriesRanges returns the axis ranges of series. Ranges of zero width, such
// as a single point or a flat series, are widened so the axes can be drawn.
func seriesRanges(series []model.Series) (x, y chart.ContinuousRange, ok bool) {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, pt := range s.Points {
			minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
			minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
		}
	}
	if math.IsInf(minX, 0) {
		return x, y, false
	}

	x = chart.ContinuousRange{Min: minX - 0.5, Max: maxX + 0.5}
	y = chart.ContinuousRange{Min: minY, Max: maxY}
	if maxY-minY < 1e-9 {
		y = chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}
	return x, y, true
}

// renderLineChart draws each series as a line with dots
func renderLineChart(title, xLabel, yLabel string, series []model.Series, p Palette, log zerolog.Logger) image.Image {
	xRange, yRange, ok := seriesRanges(series)
	if !ok {
		return blank(ChartRenderWidth, ChartRenderHeight, p)
	}

	out := make([]chart.Series, 0, len(series))
	for i, s := range series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, pt := range s.Points {
			xs[j], ys[j] = pt.X, pt.Y
		}
		col := seriesColors[i%len(seriesColors)]
		out = append(out, chart.ContinuousSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: col,
				StrokeWidth: 2,
				DotColor:    col,
				DotWidth:    4,
			},
		})
	}

	ch := chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontColor: toDrawing(p.Foreground)},
		Background: chartBackground(p),
		Canvas:     chart.Style{FillColor: toDrawing(p.Background)},
		Width:      ChartRenderWidth,
		Height:     ChartRenderHeight,
		XAxis: chart.XAxis{
			Name:      xLabel,
			NameStyle: axisStyle(p),
			Style:     axisStyle(p),
			Range:     &xRange,
		},
		YAxis: chart.YAxis{
			Name:      yLabel,
			NameStyle: axisStyle(p),
			Style:     axisStyle(p),
			Range:     &yRange,
		},
		Series: out,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return encodeChart(ch.Render, log)
}

// encodeChart renders to PNG and decodes it back into an image. Render
// errors produce a blank image so the content area still updates.
func encodeChart(render func(chart.RendererProvider, io.Writer) error, log zerolog.Logger) image.Image {
	var buf bytes.Buffer
	if err := render(chart.PNG, &buf); err != nil {
		log.Warn().Err(err).Msg("chart render failed, showing blank fallback")
		return blank(ChartRenderWidth, ChartRenderHeight, LightPalette)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		log.Warn().Err(err).Msg("chart decode failed, showing blank fallback")
		return blank(ChartRenderWidth, ChartRenderHeight, LightPalette)
	}
	return img
}

func blank(w, h int, p Palette) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: p.Background}, image.Point{}, draw.Src)
	return img
}
