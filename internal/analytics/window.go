package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ReferenceLayout is the fixed format of a reference instant string.
const ReferenceLayout = "2006-01-02 15:04:05"

// ErrInvalidTimestamp reports a reference instant that does not match
// ReferenceLayout. It is always an explicit failure; no entry point
// substitutes "now" for an unparseable string.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Window is a closed [Start, End] instant pair. Start <= End always holds
// for windows produced by MonthWindow and QuarterWindow.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ParseReference parses a reference instant in ReferenceLayout.
func ParseReference(s string) (time.Time, error) {
	t, err := time.Parse(ReferenceLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %q", ErrInvalidTimestamp, s, ReferenceLayout)
	}
	return t, nil
}

// MonthWindow returns the month-to-date window for ref: from the first
// instant of ref's calendar month through ref itself.
func MonthWindow(ref time.Time) Window {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return Window{Start: start, End: ref}
}

// QuarterWindow returns the trailing three-calendar-month window ending at
// ref. The start keeps ref's day-of-month and clock time; when the target
// month is shorter, the day clamps to the last valid day of that month
// (May 31 → Feb 28/29), never overflowing into the next month.
func QuarterWindow(ref time.Time) Window {
	return Window{Start: addMonthsClamped(ref, -3), End: ref}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y := t.Year()
	m := int(t.Month()) - 1 + months
	y += m / 12
	m = m % 12
	if m < 0 {
		m += 12
		y--
	}
	month := time.Month(m + 1)

	day := t.Day()
	if last := daysIn(y, month, t.Location()); day > last {
		day = last
	}
	return time.Date(y, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
