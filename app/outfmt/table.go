package outfmt

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jkeogh/t212cgt/gains"
)

// TableWriter renders the report as an aligned table.
type TableWriter struct {
	w io.Writer
}

func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{w: w}
}

// PrintReport implements ReportWriter.
func (t *TableWriter) PrintReport(r *gains.Report) error {
	tableModel := gains.RenderGainsTable(r)

	table := tablewriter.NewWriter(t.w)
	table.SetHeader(tableModel.Header)
	table.SetBorder(false)
	table.SetRowLine(true)

	for _, row := range tableModel.Rows {
		table.Append(row)
	}
	table.SetFooter(tableModel.Footer)
	table.Render()
	return nil
}
