package date

import (
	"fmt"
	"time"
)

// Range is an inclusive reporting window [Start, End].
// End carries the last instant of its day, so that a transaction at any
// time on the final day still falls inside the window.
type Range struct {
	Start time.Time
	End   time.Time
}

// YearRange returns the window covering the whole calendar year:
// Jan 1 00:00:00 through Dec 31 23:59:59.
func YearRange(year int) Range {
	return Range{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// NewRange returns the window spanning the start of the start day through
// the end of the end day, inclusive.
func NewRange(start Date, end Date) (Range, error) {
	if end.Before(start) {
		return Range{}, fmt.Errorf("range end %v is before start %v", end, start)
	}
	return Range{
		Start: start.UTCTime(),
		End:   end.UTCTime().Add(24*time.Hour - time.Second),
	}, nil
}

// Contains reports whether t falls inside the window, inclusive both ends.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s",
		r.Start.Format(DefaultFormat), r.End.Format(DefaultFormat))
}
