package purge_expired_options_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/usecase/purge_expired_options"
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
	active  []*domain.Booking
	deleted []int64
}

func (f *fakeBookingRepo) ListActiveByTrip(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.active, nil
}

func (f *fakeBookingRepo) DeleteMany(_ context.Context, ids []int64) (int64, error) {
	f.deleted = append(f.deleted, ids...)
	return int64(len(ids)), nil
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

type fakeLedger struct {
	released int
}

func (f *fakeLedger) Release(_ context.Context, _ int64, spots int, _ domain.ReservationKind) error {
	f.released += spots
	return nil
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

func TestExecute_PurgesExpiredOptions(t *testing.T) {
	confirmed := &domain.Booking{
		ID: 5, TripID: 1, CabinID: ptr.Ptr(int64(100)),
		BedNumber: 5, Status: domain.StatusConfirmed, Gender: domain.GenderMale,
	}
	repo := &fakeBookingRepo{active: []*domain.Booking{
		option(1, futureDate(-3)),
		option(2, futureDate(-1)),
		option(3, futureDate(5)),
		confirmed,
	}}
	ledger := &fakeLedger{}
	uc := purge_expired_options.NewUseCase(repo, &fakeTripRepo{trip: &domain.Trip{ID: 1}},
		ledger, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &purge_expired_options.Request{TripID: 1})

	require.NoError(t, err)
	// Удаляются только просроченные опционы, живой опцион и
	// подтвержденное бронирование остаются
	assert.ElementsMatch(t, []int64{1, 2}, resp.PurgedIDs)
	assert.ElementsMatch(t, []int64{1, 2}, repo.deleted)
	assert.Equal(t, 2, resp.ReleasedSpots)
	assert.Equal(t, 2, ledger.released)
}

func TestExecute_NothingToPurge(t *testing.T) {
	repo := &fakeBookingRepo{active: []*domain.Booking{option(1, futureDate(5))}}
	ledger := &fakeLedger{}
	uc := purge_expired_options.NewUseCase(repo, &fakeTripRepo{trip: &domain.Trip{ID: 1}},
		ledger, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &purge_expired_options.Request{TripID: 1})

	require.NoError(t, err)
	assert.Empty(t, resp.PurgedIDs)
	assert.Zero(t, resp.ReleasedSpots)
	assert.Empty(t, repo.deleted)
	assert.Zero(t, ledger.released)
}

func TestExecute_TripNotFound(t *testing.T) {
	uc := purge_expired_options.NewUseCase(&fakeBookingRepo{}, &fakeTripRepo{},
		&fakeLedger{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &purge_expired_options.Request{TripID: 42})

	assert.ErrorIs(t, err, purge_expired_options.ErrTripNotFound)
}
