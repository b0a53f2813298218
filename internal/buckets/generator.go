// Package buckets cuts a reference timeline into calendar windows used for
// cycle-time reporting.
package buckets

import (
	"fmt"
	"time"
)

// DateLayout is the ISO-8601 calendar date format used at the boundaries.
const DateLayout = "2006-01-02"

// Bucket is a closed calendar window [Start, End]. Both ends are dates at
// 00:00 UTC; End is the last day included in the window.
type Bucket struct {
	Start       time.Time   `json:"start_date"`
	End         time.Time   `json:"end_date"`
	Granularity Granularity `json:"granularity"`
	Label       string      `json:"label"`
}

// Sequence is an ordered list of buckets, most recent first.
type Sequence []Bucket

// Generate returns granularity.Count() buckets walking backward from
// reference. Only the calendar date of reference is used; the wall clock is
// never consulted.
func Generate(g Granularity, reference time.Time) (Sequence, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGranularity, string(g))
	}

	ref := Day(reference)
	n := g.Count()
	seq := make(Sequence, 0, n)

	for i := 0; i < n; i++ {
		var start, end time.Time
		switch g {
		case Weekly:
			start = ref.AddDate(0, 0, -7*i)
			end = start.AddDate(0, 0, 6)
		case Monthly:
			// Day 1 is always valid, so AddDate never overflows into the next month.
			start = SnapToStart(ref, Monthly).AddDate(0, -i, 0)
			end = SnapToEnd(start, Monthly)
		case Quarterly:
			start = SnapToStart(ref, Quarterly).AddDate(0, -3*i, 0)
			end = SnapToEnd(start, Quarterly)
		case Yearly:
			start = SnapToStart(ref, Yearly).AddDate(-i, 0, 0)
			end = SnapToEnd(start, Yearly)
		}
		seq = append(seq, Bucket{
			Start:       start,
			End:         end,
			Granularity: g,
			Label:       GenerateLabel(start, g),
		})
	}

	return seq, nil
}

// Day normalizes t to midnight UTC of its own calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SnapToStart returns the first day of the calendar unit containing t.
// Weekly windows are anchored on the reference date itself, so t is returned
// unchanged (as a date) for Weekly.
func SnapToStart(t time.Time, g Granularity) time.Time {
	d := Day(t)
	switch g {
	case Monthly:
		return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		firstMonth := time.Month((int(d.Month())-1)/3*3 + 1)
		return time.Date(d.Year(), firstMonth, 1, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return d
	}
}

// SnapToEnd returns the last day of the calendar unit that starts at
// SnapToStart(t, g). For Weekly it is six days after t.
func SnapToEnd(t time.Time, g Granularity) time.Time {
	start := SnapToStart(t, g)
	switch g {
	case Monthly:
		// Day 0 of the following month is the last day of this one.
		return time.Date(start.Year(), start.Month()+1, 0, 0, 0, 0, 0, time.UTC)
	case Quarterly:
		return time.Date(start.Year(), start.Month()+3, 0, 0, 0, 0, 0, time.UTC)
	case Yearly:
		return time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default:
		return start.AddDate(0, 0, 6)
	}
}

// GenerateLabel returns a human-readable label for a bucket starting at t
// (e.g. "2024-W09", "Mar 2024", "2024-Q1", "2024").
func GenerateLabel(t time.Time, g Granularity) string {
	switch g {
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week)
	case Monthly:
		return t.Format("Jan 2006")
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", t.Year(), (int(t.Month())-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format(DateLayout)
	}
}

// Contains reports whether the calendar date of t falls inside the bucket.
func (b Bucket) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(b.Start) && !d.After(b.End)
}

// Days returns the number of calendar days covered by the bucket.
func (b Bucket) Days() int {
	return int(b.End.Sub(b.Start).Hours()/24) + 1
}

// IndexOf returns the index of the bucket containing t. Returns -1 if out of bounds.
func (s Sequence) IndexOf(t time.Time) int {
	for i, b := range s {
		if b.Contains(t) {
			return i
		}
	}
	return -1
}

// Span returns the earliest start and latest end covered by the sequence.
func (s Sequence) Span() (start, end time.Time) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}
	}
	start, end = s[0].Start, s[0].End
	for _, b := range s[1:] {
		if b.Start.Before(start) {
			start = b.Start
		}
		if b.End.After(end) {
			end = b.End
		}
	}
	return start, end
}
