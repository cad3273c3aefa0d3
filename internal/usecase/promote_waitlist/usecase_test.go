package promote_waitlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/service/capacity"
	"github.com/divetrip/booking-service/internal/service/gendercohort"
	"github.com/divetrip/booking-service/internal/usecase/promote_waitlist"
	"github.com/divetrip/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	active   []*domain.Booking
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	row := *b
	return &row, nil
}

func (f *fakeBookingRepo) ListActiveByTrip(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) PromoteWaitlist(_ context.Context, id int64, cabinID int64, bedNumber int) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingstorage.ErrBookingNotFound
	}
	if b.Status != domain.StatusWaitlist {
		return bookingstorage.ErrStatusChanged
	}
	b.Status = domain.StatusConfirmed
	b.CabinID = ptr.Ptr(cabinID)
	b.BedNumber = bedNumber
	b.CancelDate = nil
	return nil
}

type fakeTripRepo struct {
	trip *domain.Trip
}

func (f *fakeTripRepo) GetByID(_ context.Context, id int64) (*domain.Trip, error) {
	if f.trip == nil || f.trip.ID != id {
		return nil, tripstorage.ErrTripNotFound
	}
	return f.trip, nil
}

type fakeBoatRepo struct {
	cabins map[int64]*domain.Cabin
}

func (f *fakeBoatRepo) GetCabin(_ context.Context, id int64) (*domain.Cabin, error) {
	cabin, ok := f.cabins[id]
	if !ok {
		return nil, boatstorage.ErrCabinNotFound
	}
	return cabin, nil
}

type fakeLedger struct {
	available int
	reserved  int
}

func (f *fakeLedger) Reserve(_ context.Context, _ int64, spots int, _ domain.ReservationKind) error {
	if f.available < spots {
		return capacity.ErrCapacityExceeded
	}
	f.available -= spots
	f.reserved += spots
	return nil
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func waitlistEntry(id int64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		TripID:     1,
		BedNumber:  1000,
		Status:     domain.StatusWaitlist,
		Gender:     domain.GenderFemale,
		CancelDate: ptr.Ptr(futureDate(5)),
	}
}

func newTrip() *domain.Trip {
	return &domain.Trip{
		ID:             1,
		BoatID:         10,
		StartDate:      futureDate(30),
		EndDate:        futureDate(37),
		Capacity:       4,
		BookedSpots:    3,
		AvailableSpots: 1,
		PricePerSpot:   1200,
	}
}

func newUseCase(bookings *fakeBookingRepo, ledger *fakeLedger) *promote_waitlist.UseCase {
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 2},
	}}
	return promote_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()}, boats,
		ledger, gendercohort.NewService(), fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	entry := waitlistEntry(1)
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{1: entry},
		active:   []*domain.Booking{entry},
	}
	ledger := &fakeLedger{available: 1}
	uc := newUseCase(bookings, ledger)

	resp, err := uc.Execute(context.Background(), &promote_waitlist.Request{
		BookingID: 1,
		Bed:       domain.BedSelection{CabinID: 100, BedNumber: 1},
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, int64(100), resp.CabinID)
	assert.Equal(t, 1, resp.BedNumber)
	// Повышение занимает место в леджере: лист ожидания его не держал
	assert.Equal(t, 1, ledger.reserved)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	entry := waitlistEntry(1)
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{1: entry},
		active:   []*domain.Booking{entry},
	}
	uc := newUseCase(bookings, &fakeLedger{available: 0})

	_, err := uc.Execute(context.Background(), &promote_waitlist.Request{
		BookingID: 1,
		Bed:       domain.BedSelection{CabinID: 100, BedNumber: 1},
	})

	assert.ErrorIs(t, err, promote_waitlist.ErrCapacityExceeded)
}

func TestExecute_GenderConflict(t *testing.T) {
	entry := waitlistEntry(1)
	occupant := &domain.Booking{
		ID: 2, TripID: 1, CabinID: ptr.Ptr(int64(100)), BedNumber: 2,
		Status: domain.StatusConfirmed, Gender: domain.GenderMale,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{1: entry},
		active:   []*domain.Booking{entry, occupant},
	}
	uc := newUseCase(bookings, &fakeLedger{available: 1})

	_, err := uc.Execute(context.Background(), &promote_waitlist.Request{
		BookingID: 1,
		Bed:       domain.BedSelection{CabinID: 100, BedNumber: 1},
	})

	assert.ErrorIs(t, err, promote_waitlist.ErrGenderConflict)
}

func TestExecute_BedTaken(t *testing.T) {
	entry := waitlistEntry(1)
	occupant := &domain.Booking{
		ID: 2, TripID: 1, CabinID: ptr.Ptr(int64(100)), BedNumber: 1,
		Status: domain.StatusConfirmed, Gender: domain.GenderFemale,
	}
	bookings := &fakeBookingRepo{
		bookings: map[int64]*domain.Booking{1: entry},
		active:   []*domain.Booking{entry, occupant},
	}
	uc := newUseCase(bookings, &fakeLedger{available: 1})

	_, err := uc.Execute(context.Background(), &promote_waitlist.Request{
		BookingID: 1,
		Bed:       domain.BedSelection{CabinID: 100, BedNumber: 1},
	})

	assert.ErrorIs(t, err, promote_waitlist.ErrBedTaken)
}

func TestExecute_NotWaitlist(t *testing.T) {
	confirmed := &domain.Booking{ID: 1, TripID: 1, Status: domain.StatusConfirmed}
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{1: confirmed}}
	uc := newUseCase(bookings, &fakeLedger{available: 1})

	_, err := uc.Execute(context.Background(), &promote_waitlist.Request{
		BookingID: 1,
		Bed:       domain.BedSelection{CabinID: 100, BedNumber: 1},
	})

	assert.ErrorIs(t, err, promote_waitlist.ErrNotWaitlist)
}
