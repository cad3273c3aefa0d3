package create_waitlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/integrations/identityservice"
	"github.com/divetrip/booking-service/internal/usecase/create_waitlist"
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
	active   []*domain.Booking
	maxBed   int
	inserted []*domain.Booking
	nextID   int64
}

func (f *fakeBookingRepo) InsertMany(_ context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	created := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		f.nextID++
		row := *b
		row.ID = f.nextID
		created = append(created, &row)
	}
	f.inserted = append(f.inserted, created...)
	return created, nil
}

func (f *fakeBookingRepo) ListActiveByTrip(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) MaxWaitlistBed(_ context.Context, _ int64) (int, error) {
	return f.maxBed, nil
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

type fakeIdentity struct{}

func (fakeIdentity) GetUser(_ context.Context, id int64) (*identityservice.User, error) {
	return &identityservice.User{ID: id}, nil
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func option(id int64, cancelDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		TripID:     1,
		CabinID:    ptr.Ptr(int64(100)),
		BedNumber:  int(id),
		Status:     domain.StatusOption,
		Gender:     domain.GenderMale,
		CancelDate: ptr.Ptr(cancelDate),
	}
}

func newTrip() *domain.Trip {
	return &domain.Trip{
		ID:             1,
		BoatID:         10,
		StartDate:      futureDate(30),
		EndDate:        futureDate(37),
		Capacity:       4,
		BookedSpots:    4,
		AvailableSpots: 0,
		PricePerSpot:   1200,
	}
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{
			option(1, futureDate(5)),
			option(2, futureDate(5)),
		},
	}
	uc := create_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     1,
		OwnerID:    7,
		Count:      2,
		Gender:     domain.GenderFemale,
		CancelDate: futureDate(5),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	// Номера выдаются из синтетической зоны, последовательно
	assert.Equal(t, 1000, resp.Bookings[0].BedNumber)
	assert.Equal(t, 1001, resp.Bookings[1].BedNumber)
	for _, b := range resp.Bookings {
		assert.Equal(t, string(domain.StatusWaitlist), b.Status)
	}
}

func TestExecute_MonotonicBedNumbers(t *testing.T) {
	// Ранее выданные синтетические номера не переиспользуются,
	// даже если записи уже отменены
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{option(1, futureDate(5))},
		maxBed: 1007,
	}
	uc := create_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     1,
		OwnerID:    7,
		Count:      1,
		Gender:     domain.GenderMale,
		CancelDate: futureDate(5),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, 1008, resp.Bookings[0].BedNumber)
}

func TestExecute_NoActiveOptions(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{{
			ID:        1,
			TripID:    1,
			CabinID:   ptr.Ptr(int64(100)),
			BedNumber: 1,
			Status:    domain.StatusConfirmed,
			Gender:    domain.GenderMale,
		}},
	}
	uc := create_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     1,
		OwnerID:    7,
		Count:      1,
		Gender:     domain.GenderMale,
		CancelDate: futureDate(5),
	})

	assert.ErrorIs(t, err, create_waitlist.ErrWaitlistLimitExceeded)
}

func TestExecute_CountAboveOptionCount(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{option(1, futureDate(5))},
	}
	uc := create_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     1,
		OwnerID:    7,
		Count:      2,
		Gender:     domain.GenderMale,
		CancelDate: futureDate(5),
	})

	assert.ErrorIs(t, err, create_waitlist.ErrWaitlistLimitExceeded)
}

func TestExecute_ExpiredOptionsDoNotCount(t *testing.T) {
	// Просроченный опцион не считается живым для лимита листа ожидания
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{option(1, futureDate(-3))},
	}
	uc := create_waitlist.NewUseCase(bookings, &fakeTripRepo{trip: newTrip()},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     1,
		OwnerID:    7,
		Count:      1,
		Gender:     domain.GenderMale,
		CancelDate: futureDate(5),
	})

	assert.ErrorIs(t, err, create_waitlist.ErrWaitlistLimitExceeded)
}

func TestExecute_TripNotFound(t *testing.T) {
	uc := create_waitlist.NewUseCase(&fakeBookingRepo{}, &fakeTripRepo{},
		fakeIdentity{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_waitlist.Request{
		TripID:     42,
		OwnerID:    7,
		Count:      1,
		Gender:     domain.GenderMale,
		CancelDate: futureDate(5),
	})

	assert.ErrorIs(t, err, create_waitlist.ErrTripNotFound)
}
