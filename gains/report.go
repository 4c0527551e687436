package gains

import (
	"github.com/shopspring/decimal"
)

// InstrumentGain is one instrument's realized gain for the window.
type InstrumentGain struct {
	Instrument string
	Gain       decimal.Decimal
}

// Report aggregates per-instrument gains for the reporting window.
// The total is a plain sum, so the order instruments are added in does
// not affect it.
type Report struct {
	Currency  string
	TaxRate   decimal.Decimal
	Gains     []InstrumentGain
	TotalGain decimal.Decimal
}

func NewReport(currency string, taxRate decimal.Decimal) *Report {
	return &Report{
		Currency:  currency,
		TaxRate:   taxRate,
		TotalGain: decimal.Zero,
	}
}

func (r *Report) Add(instrument string, gain decimal.Decimal) {
	r.Gains = append(r.Gains, InstrumentGain{Instrument: instrument, Gain: gain})
	r.TotalGain = r.TotalGain.Add(gain)
}

// CgtDue is the tax liability on the report's total gain.
func (r *Report) CgtDue() decimal.Decimal {
	return r.TotalGain.Mul(r.TaxRate)
}
