package bookings_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/service/bookings"
	"github.com/divetrip/booking-service/internal/service/bookings/models"
	"github.com/divetrip/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	byID    map[int64]*domain.Booking
	active  []*domain.Booking
	byOwner []*domain.Booking

	lastOwnerStatus *domain.BookingStatus
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) ListActiveByTrip(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) ListByOwner(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastOwnerStatus = status
	return f.byOwner, nil
}

type fakeTripRepo struct {
	trips map[int64]*domain.Trip
}

func (f *fakeTripRepo) GetByID(_ context.Context, id int64) (*domain.Trip, error) {
	t, ok := f.trips[id]
	if !ok {
		return nil, tripstorage.ErrTripNotFound
	}
	return t, nil
}

func dateFromNow(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeBookingRepo{byID: map[int64]*domain.Booking{
		7: {
			ID:            7,
			TripID:        1,
			CabinID:       ptr.Ptr(int64(100)),
			BedNumber:     2,
			Status:        domain.StatusConfirmed,
			Gender:        domain.GenderFemale,
			Price:         1500,
			OriginalPrice: 1500,
			OwnerID:       42,
		},
	}}
	svc := bookings.NewService(repo, &fakeTripRepo{}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	require.NotNil(t, resp.CabinID)
	assert.Equal(t, int64(100), *resp.CabinID)
	assert.Nil(t, resp.CancelDate)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := bookings.NewService(&fakeBookingRepo{byID: map[int64]*domain.Booking{}}, &fakeTripRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
}

func TestGetTripBookings_HidesExpiredOptions(t *testing.T) {
	trip := &domain.Trip{ID: 1, Capacity: 10, BookedSpots: 3, AvailableSpots: 7}
	repo := &fakeBookingRepo{active: []*domain.Booking{
		{ID: 1, TripID: 1, Status: domain.StatusOption, CancelDate: ptr.Ptr(dateFromNow(-2))},
		{ID: 2, TripID: 1, Status: domain.StatusOption, CancelDate: ptr.Ptr(dateFromNow(5))},
		{ID: 3, TripID: 1, Status: domain.StatusConfirmed},
	}}
	svc := bookings.NewService(repo, &fakeTripRepo{trips: map[int64]*domain.Trip{1: trip}}, nopLogger{})

	resp, err := svc.GetTripBookings(context.Background(), &models.GetTripBookingsRequest{TripID: 1})
	require.NoError(t, err)

	// Просроченный опцион скрыт, но счетчики не пересчитываются
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, int64(3), resp.Bookings[1].ID)
	assert.Equal(t, 3, resp.BookedSpots)
	assert.Equal(t, 7, resp.AvailableSpots)
	assert.Equal(t, 10, resp.Capacity)
}

func TestGetTripBookings_IncludeExpired(t *testing.T) {
	trip := &domain.Trip{ID: 1, Capacity: 10, BookedSpots: 1, AvailableSpots: 9}
	repo := &fakeBookingRepo{active: []*domain.Booking{
		{ID: 1, TripID: 1, Status: domain.StatusOption, CancelDate: ptr.Ptr(dateFromNow(-2))},
	}}
	svc := bookings.NewService(repo, &fakeTripRepo{trips: map[int64]*domain.Trip{1: trip}}, nopLogger{})

	resp, err := svc.GetTripBookings(context.Background(), &models.GetTripBookingsRequest{TripID: 1, IncludeExpired: true})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
}

func TestGetTripBookings_TripNotFound(t *testing.T) {
	svc := bookings.NewService(&fakeBookingRepo{}, &fakeTripRepo{trips: map[int64]*domain.Trip{}}, nopLogger{})

	_, err := svc.GetTripBookings(context.Background(), &models.GetTripBookingsRequest{TripID: 5})
	assert.ErrorIs(t, err, bookings.ErrTripNotFound)
}

func TestGetOwnerBookings_StatusFilter(t *testing.T) {
	repo := &fakeBookingRepo{byOwner: []*domain.Booking{
		{ID: 1, OwnerID: 42, Status: domain.StatusWaitlist, BedNumber: 1000},
	}}
	svc := bookings.NewService(repo, &fakeTripRepo{}, nopLogger{})

	resp, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 42,
		Status:  ptr.Ptr("waitlist"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, repo.lastOwnerStatus)
	assert.Equal(t, domain.StatusWaitlist, *repo.lastOwnerStatus)
}

func TestGetOwnerBookings_InvalidStatus(t *testing.T) {
	svc := bookings.NewService(&fakeBookingRepo{}, &fakeTripRepo{}, nopLogger{})

	_, err := svc.GetOwnerBookings(context.Background(), &models.GetOwnerBookingsRequest{
		OwnerID: 42,
		Status:  ptr.Ptr("pending"),
	})
	assert.ErrorIs(t, err, bookings.ErrInvalidInput)
}
