package domain

import "time"

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsValid returns true if the range is well-formed (start not after end)
func (r DateRange) IsValid() bool {
	return !dateOnly(r.Start).After(dateOnly(r.End))
}

// Overlaps reports whether two inclusive date ranges intersect:
// a.Start <= b.End && b.Start <= a.End
func (r DateRange) Overlaps(other DateRange) bool {
	return !dateOnly(r.Start).After(dateOnly(other.End)) &&
		!dateOnly(other.Start).After(dateOnly(r.End))
}

// Buffered widens the range by the given number of buffer days on each side
func (r DateRange) Buffered(days int) DateRange {
	return DateRange{
		Start: r.Start.AddDate(0, 0, -days),
		End:   r.End.AddDate(0, 0, days),
	}
}

// ConflictSeverity classifies a schedule conflict between a requested
// range and an existing trip
type ConflictSeverity string

const (
	// ConflictDirect means the requested range itself intersects the trip
	ConflictDirect ConflictSeverity = "direct"
	// ConflictBuffer means only the buffered range intersects the trip
	ConflictBuffer ConflictSeverity = "buffer"
)
