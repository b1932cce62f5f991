// Package console renders views as plain text for the headless CLI.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ytget/dataset-viewer/internal/display"
	"github.com/ytget/dataset-viewer/internal/model"
)

// BarWidth is the length of the longest bar
const BarWidth = 40

// Presenter writes views and messages to an io.Writer
type Presenter struct {
	mu  sync.Mutex
	out io.Writer
	// Quiet suppresses status lines
	Quiet bool
}

var _ display.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter writing to out
func NewPresenter(out io.Writer) *Presenter {
	return &Presenter{out: out}
}

func (p *Presenter) RenderTable(columns []string, records []model.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	display.WriteTable(p.out, columns, records)
}

func (p *Presenter) RenderBarChart(title, xLabel, yLabel string, buckets []model.Bucket) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s (%s / %s)\n", title, xLabel, yLabel)

	maxCount, labelWidth := 0, len(xLabel)
	for _, b := range buckets {
		maxCount = max(maxCount, b.Count)
		labelWidth = max(labelWidth, len(b.Label))
	}
	for _, b := range buckets {
		bar := 0
		if maxCount > 0 {
			bar = b.Count * BarWidth / maxCount
		}
		fmt.Fprintf(p.out, "%-*s | %s %d\n", labelWidth, b.Label, strings.Repeat("#", bar), b.Count)
	}
}

func (p *Presenter) RenderLineChart(title, xLabel, yLabel string, series []model.Series) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "%s (%s / %s)\n", title, xLabel, yLabel)
	for _, s := range series {
		points := make([]string, len(s.Points))
		for i, pt := range s.Points {
			points[i] = formatNumber(pt.X) + "=" + formatNumber(pt.Y)
		}
		fmt.Fprintf(p.out, "  %s: %s\n", s.Label, strings.Join(points, " "))
	}
}

func (p *Presenter) ShowStatus(message string) {
	if p.Quiet {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Status: %s\n", message)
}

func (p *Presenter) ShowAggregate(message string) {
	if message == "" {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, message)
}

func (p *Presenter) SetSourceLabel(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "Dataset: %s\n", label)
}

// UnmountActiveView is a no-op, printed output stays
func (p *Presenter) UnmountActiveView() {}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
