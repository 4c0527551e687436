package gains

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jkeogh/t212cgt/date"
	"github.com/jkeogh/t212cgt/util"
)

// InsufficientLotsError is returned when a disposal cannot be fully
// matched because the purchase history (after carry-forward accounting)
// does not cover it.
type InsufficientLotsError struct {
	Instrument string
	Unmatched  decimal.Decimal
}

func (e *InsufficientLotsError) Error() string {
	return fmt.Sprintf(
		"insufficient purchase lots for %s: %s disposed shares have no matching purchase",
		e.Instrument, e.Unmatched)
}

// cursor tracks how much of an event's quantity is still unconsumed.
// Keeping this separate from the Event leaves the caller's events
// untouched, so ComputeGain may be called repeatedly over the same
// history.
type cursor struct {
	ev        *Event
	remaining decimal.Decimal
}

// ComputeGain computes the realized gain or loss for one instrument's
// disposals falling inside window, matching shares sold against the
// oldest still-unmatched purchases (FIFO).
//
// events must be the instrument's full history, unfiltered by date:
// disposals from before the window consume the oldest purchase lots
// first, and only the leftover quantity forms the basis available to
// in-window disposals. Events need not be pre-sorted.
func ComputeGain(events []*Event, window date.Range) (decimal.Decimal, error) {
	buys := make([]cursor, 0, len(events))
	sells := make([]cursor, 0, len(events))
	carriedForwardSold := decimal.Zero

	for _, ev := range SortEvents(append([]*Event{}, events...)) {
		switch ev.Action {
		case BUY:
			// Purchases after the window cannot have funded an
			// in-window disposal.
			if !ev.Time.After(window.End) {
				buys = append(buys, cursor{ev, ev.Shares})
			}
		case SELL:
			if ev.Time.Before(window.Start) {
				carriedForwardSold = carriedForwardSold.Add(ev.Shares)
			} else if window.Contains(ev.Time) {
				sells = append(sells, cursor{ev, ev.Shares})
			}
			// Disposals after the window are not yet realized in
			// this period.
		default:
			util.Assertf(false, "ComputeGain: invalid action: %v", ev.Action)
		}
	}

	// Pre-subtract shares already disposed of in earlier periods, so the
	// same purchased shares are not matched twice across periods. The
	// first lot not fully consumed keeps its reduced remainder and
	// becomes the head of the queue.
	firstLot := 0
	for ; firstLot < len(buys); firstLot++ {
		if carriedForwardSold.LessThan(buys[firstLot].remaining) {
			buys[firstLot].remaining = buys[firstLot].remaining.Sub(carriedForwardSold)
			break
		}
		carriedForwardSold = carriedForwardSold.Sub(buys[firstLot].remaining)
	}
	lots := buys[firstLot:]

	gain := decimal.Zero
	li := 0
	for si := 0; si < len(sells); {
		if li >= len(lots) {
			unmatched := sells[si].remaining
			for _, s := range sells[si+1:] {
				unmatched = unmatched.Add(s.remaining)
			}
			return decimal.Zero, &InsufficientLotsError{
				Instrument: sells[si].ev.InstrumentKey(),
				Unmatched:  unmatched,
			}
		}

		sell := &sells[si]
		lot := &lots[li]
		profitPerShare := sell.ev.PricePerShare.Sub(lot.ev.PricePerShare)

		// Each side's transaction cost is charged exactly once, at the
		// match which exhausts it.
		switch lot.remaining.Cmp(sell.remaining) {
		case 1:
			// Lot outlasts the disposal.
			gain = gain.Add(profitPerShare.Mul(sell.remaining)).Sub(sell.ev.TxCost)
			lot.remaining = lot.remaining.Sub(sell.remaining)
			si++
		case -1:
			// Disposal outlasts the lot.
			gain = gain.Add(profitPerShare.Mul(lot.remaining)).Sub(lot.ev.TxCost)
			sell.remaining = sell.remaining.Sub(lot.remaining)
			li++
		default:
			// Exhausted together.
			gain = gain.Add(profitPerShare.Mul(sell.remaining)).
				Sub(sell.ev.TxCost).Sub(lot.ev.TxCost)
			si++
			li++
		}
	}
	return gain, nil
}
