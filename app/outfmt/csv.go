package outfmt

import (
	"encoding/csv"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/jkeogh/t212cgt/gains"
)

// CSVWriter writes the report as gains.csv in OutDir.
type CSVWriter struct {
	OutDir string
}

func NewCSVWriter(outDir string) (*CSVWriter, error) {
	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("creating CSV output directory: %w", err)
	}
	return &CSVWriter{OutDir: outDir}, nil
}

// PrintReport implements ReportWriter.
func (w *CSVWriter) PrintReport(r *gains.Report) error {
	tableModel := gains.RenderGainsTable(r)

	fn := path.Join(w.OutDir, "gains.csv")
	fp, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("create file %q: %w", fn, err)
	}
	defer fp.Close()

	csvWriter := csv.NewWriter(fp)
	if err := csvWriter.Write(tableModel.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range tableModel.Rows {
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	// Footer cells are multi-line in table form; flatten for csv.
	labels := strings.Split(tableModel.Footer[0], "\n")
	values := strings.Split(tableModel.Footer[1], "\n")
	for i, label := range labels {
		if err := csvWriter.Write([]string{label, values[i]}); err != nil {
			return fmt.Errorf("write footer: %w", err)
		}
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
