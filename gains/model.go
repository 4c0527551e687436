package gains

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type EventAction int

const (
	NO_ACTION EventAction = iota
	BUY
	SELL
)

func (a EventAction) String() string {
	switch a {
	case BUY:
		return "Buy"
	case SELL:
		return "Sell"
	default:
		return "-"
	}
}

// Event is one transaction from the export: a purchase or a disposal.
// Events are immutable once parsed; the matcher tracks remaining
// quantities in its own ledger rather than writing back into them.
type Event struct {
	Action        EventAction
	Time          time.Time
	Ticker        string
	Name          string
	Shares        decimal.Decimal
	PricePerShare decimal.Decimal
	TxCost        decimal.Decimal
}

// InstrumentKey returns the identifier events are grouped under.
// The display name is included because brokers reuse tickers across
// instruments.
func (e *Event) InstrumentKey() string {
	return fmt.Sprintf("%s(%s)", e.Ticker, e.Name)
}

// SortEvents stably sorts events chronologically.
func SortEvents(events []*Event) []*Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events
}

// SplitEventsByInstrument groups events by instrument key, preserving
// the source order within each instrument.
func SplitEventsByInstrument(events []*Event) map[string][]*Event {
	eventsByInst := make(map[string][]*Event)
	for _, ev := range events {
		key := ev.InstrumentKey()
		instEvents, ok := eventsByInst[key]
		if !ok {
			instEvents = make([]*Event, 0, 8)
		}
		eventsByInst[key] = append(instEvents, ev)
	}
	return eventsByInst
}
