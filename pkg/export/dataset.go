// Package export renders tabular report datasets to CSV and PDF.
package export

// Dataset defines tabular export content. Rows are keyed by header so
// renderers stay independent of column count.
type Dataset struct {
	Headers []string
	Rows    []map[string]string
	// Footer lines are appended after the table, e.g. credit totals.
	Footer []string
}

// Append adds one row given in header order.
func (d *Dataset) Append(values ...string) {
	row := make(map[string]string, len(d.Headers))
	for i, header := range d.Headers {
		if i < len(values) {
			row[header] = values[i]
		}
	}
	d.Rows = append(d.Rows, row)
}
