package gains

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type RenderTable struct {
	Header []string
	Rows   [][]string
	Footer []string
	Notes  []string
	Errors []error
}

// CurrStr formats a monetary amount the way the report prints it:
// two decimal places with the reporting currency appended.
func CurrStr(val decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", val.StringFixed(2), currency)
}

// RenderGainsTable builds the per-instrument gains table for a report.
// Instruments with a zero gain are omitted, matching the line output.
func RenderGainsTable(r *Report) *RenderTable {
	table := &RenderTable{}
	table.Header = []string{"Instrument", "Gain"}

	for _, ig := range r.Gains {
		if ig.Gain.IsZero() {
			continue
		}
		table.Rows = append(table.Rows, []string{
			ig.Instrument, CurrStr(ig.Gain, r.Currency),
		})
	}

	table.Footer = []string{
		"Total Gain\nCGT due",
		CurrStr(r.TotalGain, r.Currency) + "\n" + CurrStr(r.CgtDue(), r.Currency),
	}
	return table
}
