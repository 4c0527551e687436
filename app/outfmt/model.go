package outfmt

import (
	"github.com/jkeogh/t212cgt/gains"
)

// ReportWriter renders a computed gains report to some destination.
type ReportWriter interface {
	PrintReport(r *gains.Report) error
}
