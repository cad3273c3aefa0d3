package domain

import "time"

// BookingStatus represents the status of a bed booking
type BookingStatus string

const (
	// StatusOption is a time-boxed hold on a bed pending confirmation or expiry
	StatusOption BookingStatus = "option"
	// StatusConfirmed is a guaranteed bed reservation
	StatusConfirmed BookingStatus = "confirmed"
	// StatusWaitlist is a request for a bed on a fully booked trip,
	// contingent on an option holder releasing a bed
	StatusWaitlist BookingStatus = "waitlist"
	// StatusCancelled is terminal
	StatusCancelled BookingStatus = "cancelled"
)

// Gender of the booking occupant; drives the single-gender-per-cabin rule
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnset  Gender = ""
)

// IsSet returns true if the gender has a concrete value
func (g Gender) IsSet() bool {
	return g == GenderMale || g == GenderFemale
}

// Booking represents a single bed reservation on a trip
// Waitlist bookings carry a synthetic bed number (>= WaitlistBedBandStart)
// and no cabin: they are not subject to cabin/bed uniqueness and never
// count against trip capacity
type Booking struct {
	ID        int64
	TripID    int64
	CabinID   *int64 // nil for waitlist entries
	BedNumber int
	Status    BookingStatus
	Gender    Gender
	GroupName string

	// Price is the effective price; OriginalPrice is preserved so the
	// single-use surcharge stays idempotent
	Price         float64
	OriginalPrice float64
	SingleUse     bool

	// CancelDate is the option/waitlist expiry date; nil for confirmed bookings
	CancelDate *time.Time

	OwnerID int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsExpiredOption returns true for an option whose cancel date has passed.
// Such bookings are soft-invalid: hidden from listings and excluded from the
// gender cohort, but they keep their capacity reservation until cancelled or purged
func (b *Booking) IsExpiredOption(now time.Time) bool {
	if b.Status != StatusOption || b.CancelDate == nil {
		return false
	}
	return dateOnly(*b.CancelDate).Before(dateOnly(now))
}

// CountsAgainstCapacity returns true if the booking holds a capacity reservation
func (b *Booking) CountsAgainstCapacity() bool {
	return b.IsActive() && (b.Status == StatusOption || b.Status == StatusConfirmed)
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusOption || b.Status == StatusWaitlist
}

// IsWaitlistBedNumber reports whether a bed number belongs to the synthetic
// waitlist band
func IsWaitlistBedNumber(bedNumber int) bool {
	return bedNumber >= WaitlistBedBandStart
}

// BedSelection identifies one physical bed requested in a reservation
type BedSelection struct {
	CabinID   int64
	BedNumber int
}

// ReservationKind classifies how a reservation interacts with the capacity ledger
type ReservationKind string

const (
	ReservationOption    ReservationKind = "option"
	ReservationConfirmed ReservationKind = "confirmed"
	// ReservationWaitlist never touches trip counters
	ReservationWaitlist ReservationKind = "waitlist"
)

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
