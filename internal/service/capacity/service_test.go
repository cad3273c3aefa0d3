package capacity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	tripRepo "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/service/capacity"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeTripRepo имитирует условный UPDATE счетчиков в памяти
type fakeTripRepo struct {
	booked    int
	available int
	missing   bool
}

func (f *fakeTripRepo) ReserveSpots(_ context.Context, _ int64, spots int) error {
	if f.missing {
		return tripRepo.ErrTripNotFound
	}
	if f.available < spots {
		return tripRepo.ErrNoCapacity
	}
	f.booked += spots
	f.available -= spots
	return nil
}

func (f *fakeTripRepo) ReleaseSpots(_ context.Context, _ int64, spots int) error {
	if f.missing {
		return tripRepo.ErrTripNotFound
	}
	if f.booked < spots {
		return tripRepo.ErrNoBookedSpots
	}
	f.booked -= spots
	f.available += spots
	return nil
}

func TestReserve_Success(t *testing.T) {
	repo := &fakeTripRepo{available: 10}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Reserve(context.Background(), 1, 3, domain.ReservationConfirmed)

	require.NoError(t, err)
	assert.Equal(t, 3, repo.booked)
	assert.Equal(t, 7, repo.available)
}

func TestReserve_CapacityExceeded(t *testing.T) {
	repo := &fakeTripRepo{available: 2}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Reserve(context.Background(), 1, 3, domain.ReservationOption)

	assert.ErrorIs(t, err, capacity.ErrCapacityExceeded)
	// Счетчики не изменились
	assert.Equal(t, 0, repo.booked)
	assert.Equal(t, 2, repo.available)
}

func TestReserve_WaitlistIsNoop(t *testing.T) {
	repo := &fakeTripRepo{available: 0}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Reserve(context.Background(), 1, 5, domain.ReservationWaitlist)

	require.NoError(t, err)
	assert.Equal(t, 0, repo.booked)
	assert.Equal(t, 0, repo.available)
}

func TestReserve_TripNotFound(t *testing.T) {
	svc := capacity.NewService(&fakeTripRepo{missing: true}, nopLogger{})

	err := svc.Reserve(context.Background(), 42, 1, domain.ReservationConfirmed)

	assert.ErrorIs(t, err, capacity.ErrTripNotFound)
}

func TestReserve_InvalidSpots(t *testing.T) {
	svc := capacity.NewService(&fakeTripRepo{available: 5}, nopLogger{})

	err := svc.Reserve(context.Background(), 1, 0, domain.ReservationOption)

	assert.ErrorIs(t, err, capacity.ErrInvalidSpots)
}

func TestRelease_Success(t *testing.T) {
	repo := &fakeTripRepo{booked: 4, available: 6}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Release(context.Background(), 1, 4, domain.ReservationOption)

	require.NoError(t, err)
	assert.Equal(t, 0, repo.booked)
	assert.Equal(t, 10, repo.available)
}

func TestRelease_LedgerInvariant(t *testing.T) {
	repo := &fakeTripRepo{booked: 1, available: 9}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Release(context.Background(), 1, 2, domain.ReservationConfirmed)

	assert.ErrorIs(t, err, capacity.ErrLedgerInvariant)
}

func TestRelease_WaitlistIsNoop(t *testing.T) {
	repo := &fakeTripRepo{booked: 0, available: 0}
	svc := capacity.NewService(repo, nopLogger{})

	err := svc.Release(context.Background(), 1, 3, domain.ReservationWaitlist)

	require.NoError(t, err)
	assert.Equal(t, 0, repo.booked)
}
