package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ytget/dataset-viewer/internal/model"
)

// TableRows returns the cells of every record. When columns has one more entry
// than a record has cells, the rows are numbered from 1 in the first column.
func TableRows(columns []string, records []model.Record) [][]string {
	rows := make([][]string, len(records))
	for i, rec := range records {
		cells := rec.Cells()
		if len(columns) == len(cells)+1 {
			cells = append([]string{strconv.Itoa(i + 1)}, cells...)
		}
		rows[i] = cells
	}
	return rows
}

// WriteTable writes columns and rows aligned with tabs
func WriteTable(w io.Writer, columns []string, records []model.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, row := range TableRows(columns, records) {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// WriteGroupStats writes one line per group with the average, maximum and
// minimum of the value column
func WriteGroupStats(w io.Writer, groupTitle, valueTitle string, groups []model.GroupStat) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tAvg %s\tMax %s\tMin %s\n", groupTitle, valueTitle, valueTitle, valueTitle)
	for _, g := range groups {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n", formatValue(g.Key), g.Avg, formatValue(g.Max), formatValue(g.Min))
	}
	return tw.Flush()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
