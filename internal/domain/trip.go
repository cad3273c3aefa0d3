package domain

import "time"

// Trip represents a scheduled voyage on a specific boat over a fixed date range
// Invariant: BookedSpots + AvailableSpots == Capacity, where BookedSpots counts
// option and confirmed bookings only (waitlist is excluded)
type Trip struct {
	ID             int64
	BoatID         int64
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Capacity       int
	BookedSpots    int
	AvailableSpots int
	PricePerSpot   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Range returns the trip's date range
func (t *Trip) Range() DateRange {
	return DateRange{Start: t.StartDate, End: t.EndDate}
}

// IsFull returns true if the trip has no available spots
func (t *Trip) IsFull() bool {
	return t.AvailableSpots <= 0
}

// HasDeparted returns true if the trip start date is in the past
func (t *Trip) HasDeparted(now time.Time) bool {
	return dateOnly(t.StartDate).Before(dateOnly(now))
}

// DaysUntilDeparture returns the number of whole days from now until the
// trip start date; negative once the trip has departed
func (t *Trip) DaysUntilDeparture(now time.Time) int {
	return int(dateOnly(t.StartDate).Sub(dateOnly(now)).Hours() / 24)
}
