package outfmt

import (
	"fmt"
	"io"

	"github.com/jkeogh/t212cgt/gains"
)

// TextWriter prints the report as plain lines: one per instrument with a
// non-zero gain, then the total and the CGT due.
type TextWriter struct {
	w io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// PrintReport implements ReportWriter.
func (t *TextWriter) PrintReport(r *gains.Report) error {
	for _, ig := range r.Gains {
		if ig.Gain.IsZero() {
			continue
		}
		if _, err := fmt.Fprintf(t.w, "%s: %s\n",
			ig.Instrument, gains.CurrStr(ig.Gain, r.Currency)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(t.w, "Total Gain: %s\n",
		gains.CurrStr(r.TotalGain, r.Currency)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.w, "CGT due: %s\n",
		gains.CurrStr(r.CgtDue(), r.Currency))
	return err
}
