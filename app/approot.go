package app

import (
	"io"
	"sort"

	"github.com/jkeogh/t212cgt/app/outfmt"
	"github.com/jkeogh/t212cgt/config"
	"github.com/jkeogh/t212cgt/date"
	"github.com/jkeogh/t212cgt/gains"
	"github.com/jkeogh/t212cgt/log"
)

type DescribedReader struct {
	Desc   string
	Reader io.Reader
}

// RunCgtApp parses the transaction exports, computes the FIFO gain for
// every instrument over the window, and renders the report.
//
// A matching failure on one instrument is reported and that instrument
// skipped; the rest of the run still completes. The first such error is
// returned so the caller can exit non-zero.
func RunCgtApp(
	csvReaders []DescribedReader,
	cfg *config.Config,
	window date.Range,
	writer outfmt.ReportWriter,
	errPrinter log.ErrorPrinter) (retErr error) {

	allEvents := make([]*gains.Event, 0, 20)
	for _, csvReader := range csvReaders {
		events, err := gains.ParseEventsCsv(
			csvReader.Reader, csvReader.Desc, cfg.ReportingCurrency)
		if err != nil {
			errPrinter.Ln("Error:", err)
			return err
		}
		log.Verbosef("Parsed %d events from %s\n", len(events), csvReader.Desc)
		allEvents = append(allEvents, events...)
	}

	allEvents = gains.SortEvents(allEvents)
	eventsByInst := gains.SplitEventsByInstrument(allEvents)

	// Deterministic output order.
	instruments := make([]string, 0, len(eventsByInst))
	for inst := range eventsByInst {
		instruments = append(instruments, inst)
	}
	sort.Strings(instruments)

	report := gains.NewReport(cfg.ReportingCurrency, cfg.TaxRate)
	for _, inst := range instruments {
		gain, err := gains.ComputeGain(eventsByInst[inst], window)
		if err != nil {
			errPrinter.F("[!] %v. Skipping %s.\n", err, inst)
			if retErr == nil {
				retErr = err
			}
			continue
		}
		report.Add(inst, gain)
	}

	if err := writer.PrintReport(report); err != nil {
		errPrinter.Ln("Error:", err)
		if retErr == nil {
			retErr = err
		}
	}
	return retErr
}
