package gains

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jkeogh/t212cgt/util"
)

// Timestamp format used by the T212 export.
const CsvTimeFormat = "2006-01-02 15:04:05"

// rawEvent holds one row mid-parse, before currency normalization.
type rawEvent struct {
	ev            Event
	priceCurrency string
	exchangeRate  decimal.Decimal
}

type colParser func(string, *rawEvent) error

var colParserMap = map[string]colParser{
	"action":                   parseAction,
	"time":                     parseTime,
	"ticker":                   parseTicker,
	"name":                     parseName,
	"no. of shares":            parseShares,
	"price / share":            parsePricePerShare,
	"currency (price / share)": parsePriceCurrency,
	"exchange rate":            parseExchangeRate,
	// Named transaction-cost columns, summed into a single cost.
	"stamp duty reserve tax":  parseTxCost,
	"currency conversion fee": parseTxCost,
	"french transaction tax":  parseTxCost,
}

var ColNames []string

func init() {
	ColNames = make([]string, 0, len(colParserMap))
	for name := range colParserMap {
		ColNames = append(ColNames, name)
	}
}

func checkEventSanity(ev *Event) error {
	if ev.Action == NO_ACTION {
		return fmt.Errorf("transaction has no action (Buy, Sell)")
	} else if ev.Time.IsZero() {
		return fmt.Errorf("transaction has no time")
	} else if ev.Ticker == "" {
		return fmt.Errorf("transaction has no ticker")
	} else if !ev.Shares.IsPositive() {
		return fmt.Errorf("transaction share count is not positive")
	} else if ev.TxCost.IsNegative() {
		return fmt.Errorf("transaction cost is negative")
	}
	return nil
}

// Prices in a foreign currency are normalized with the row's own
// exchange rate. A blank rate means 1.
func normalizeCurrency(raw *rawEvent, reportingCurrency string) {
	rate := util.Tern(raw.exchangeRate.IsZero(), decimal.NewFromInt(1), raw.exchangeRate)
	if raw.priceCurrency != "" && raw.priceCurrency != reportingCurrency {
		raw.ev.PricePerShare = raw.ev.PricePerShare.Mul(rate)
	}
}

// ParseEventsCsv parses a T212-style transaction export. desc names the
// source (usually the file name) for error attribution.
func ParseEventsCsv(r io.Reader, desc string, reportingCurrency string) ([]*Event, error) {
	csvR := csv.NewReader(r)
	records, err := csvR.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV %s: %w", desc, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no rows found in %s", desc)
	}

	header := records[0]
	colParsers := make([]colParser, len(header))
	for i, col := range header {
		sanCol := strings.TrimSpace(strings.ToLower(col))
		if parser, ok := colParserMap[sanCol]; ok {
			colParsers[i] = parser
		} else {
			fmt.Fprintf(os.Stderr, "Warning: unrecognized column %q\n", sanCol)
			colParsers[i] = parseNothing
		}
	}

	events := make([]*Event, 0, len(records)-1)
	for i, record := range records[1:] {
		raw := &rawEvent{}
		for j, col := range record {
			if j >= len(colParsers) {
				break
			}
			if err := colParsers[j](col, raw); err != nil {
				return nil, fmt.Errorf("%s: row %d: %w", desc, i+1, err)
			}
		}
		if err := checkEventSanity(&raw.ev); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", desc, i+1, err)
		}
		normalizeCurrency(raw, reportingCurrency)
		ev := raw.ev
		events = append(events, &ev)
	}
	return events, nil
}

func ParseEventsCsvFile(fname string, reportingCurrency string) ([]*Event, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ParseEventsCsv(fp, fname, reportingCurrency)
}

func parseNothing(data string, raw *rawEvent) error {
	return nil
}

// Known export action values. Anything else is an error: silently
// treating an unknown action as a disposal would corrupt the lot queue.
var actionMap = map[string]EventAction{
	"buy":         BUY,
	"market buy":  BUY,
	"limit buy":   BUY,
	"stop buy":    BUY,
	"sell":        SELL,
	"market sell": SELL,
	"limit sell":  SELL,
	"stop sell":   SELL,
}

func parseAction(data string, raw *rawEvent) error {
	action, ok := actionMap[strings.TrimSpace(strings.ToLower(data))]
	if !ok {
		return fmt.Errorf("unrecognized action %q", data)
	}
	raw.ev.Action = action
	return nil
}

func parseTime(data string, raw *rawEvent) error {
	t, err := time.Parse(CsvTimeFormat, data)
	if err != nil {
		return fmt.Errorf("error parsing time: %w", err)
	}
	raw.ev.Time = t
	return nil
}

func parseTicker(data string, raw *rawEvent) error {
	raw.ev.Ticker = strings.TrimSpace(data)
	return nil
}

func parseName(data string, raw *rawEvent) error {
	raw.ev.Name = strings.TrimSpace(data)
	return nil
}

// parseDecimalField parses a decimal cell, treating blank as zero.
func parseDecimalField(data string, what string) (decimal.Decimal, error) {
	if strings.TrimSpace(data) == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(data))
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing %s: %w", what, err)
	}
	return d, nil
}

func parseShares(data string, raw *rawEvent) error {
	shares, err := parseDecimalField(data, "# shares")
	if err != nil {
		return err
	}
	raw.ev.Shares = shares
	return nil
}

func parsePricePerShare(data string, raw *rawEvent) error {
	price, err := parseDecimalField(data, "price/share")
	if err != nil {
		return err
	}
	raw.ev.PricePerShare = price
	return nil
}

func parsePriceCurrency(data string, raw *rawEvent) error {
	raw.priceCurrency = strings.ToUpper(strings.TrimSpace(data))
	return nil
}

func parseExchangeRate(data string, raw *rawEvent) error {
	rate, err := parseDecimalField(data, "exchange rate")
	if err != nil {
		return err
	}
	raw.exchangeRate = rate
	return nil
}

func parseTxCost(data string, raw *rawEvent) error {
	cost, err := parseDecimalField(data, "transaction cost")
	if err != nil {
		return err
	}
	raw.ev.TxCost = raw.ev.TxCost.Add(cost)
	return nil
}
