package domain

import "time"

// Boat represents a vessel that hosts trips
type Boat struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Cabin represents a room aboard a boat containing one or more beds
// Beds are identified by ordinal numbers 1..BedCount
type Cabin struct {
	ID       int64
	BoatID   int64
	Name     string
	Deck     string
	BedCount int
}

// HasBed returns true if bedNumber is a real bed in this cabin
func (c *Cabin) HasBed(bedNumber int) bool {
	return bedNumber >= 1 && bedNumber <= c.BedCount
}

// TotalBeds sums the bed counts of the given cabins
// Trip capacity is derived from the boat's cabins this way
func TotalBeds(cabins []*Cabin) int {
	total := 0
	for _, c := range cabins {
		total += c.BedCount
	}
	return total
}
