package resolve_boat_schedule_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/internal/usecase/resolve_boat_schedule"
	"github.com/divetrip/booking-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBoatRepo struct {
	boats []*domain.Boat
}

func (f *fakeBoatRepo) List(_ context.Context) ([]*domain.Boat, error) {
	return f.boats, nil
}

type fakeTripRepo struct {
	tripsByBoat map[int64][]*domain.Trip
}

func (f *fakeTripRepo) ListByBoat(_ context.Context, boatID int64) ([]*domain.Trip, error) {
	return f.tripsByBoat[boatID], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func trip(id, boatID int64, start, end time.Time) *domain.Trip {
	return &domain.Trip{ID: id, BoatID: boatID, StartDate: start, EndDate: end}
}

func TestExecute_DirectConflict(t *testing.T) {
	boats := &fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Aurora"}}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 1, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 6, 14),
		EndDate:   date(2024, 6, 20),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Available)
	require.Len(t, resp.Unavailable, 1)
	require.Len(t, resp.Unavailable[0].Conflicts, 1)
	assert.Equal(t, "direct", resp.Unavailable[0].Conflicts[0].Severity)
}

func TestExecute_BufferConflict(t *testing.T) {
	// Рейс [10.06, 15.06], буфер 1 день, запрос [16.06, 20.06]:
	// сами диапазоны не пересекаются, но расширенный запрос начинается 15.06
	boats := &fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Aurora"}}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 1, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 6, 16),
		EndDate:   date(2024, 6, 20),
	})

	require.NoError(t, err)
	// При строгой политике буферный конфликт тоже исключает лодку
	assert.Empty(t, resp.Available)
	require.Len(t, resp.Unavailable, 1)
	require.Len(t, resp.Unavailable[0].Conflicts, 1)
	assert.Equal(t, "buffer", resp.Unavailable[0].Conflicts[0].Severity)
}

func TestExecute_BufferConflictSoftPolicy(t *testing.T) {
	// При мягкой политике лодка остается доступной, но конфликт
	// возвращается как предупреждение
	boats := &fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Aurora"}}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 1, false, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 6, 16),
		EndDate:   date(2024, 6, 20),
	})

	require.NoError(t, err)
	require.Len(t, resp.Available, 1)
	require.Len(t, resp.Unavailable, 1)
	assert.Equal(t, "buffer", resp.Unavailable[0].Conflicts[0].Severity)
}

func TestExecute_RequestOverridesPolicy(t *testing.T) {
	boats := &fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Aurora"}}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 1, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate:              date(2024, 6, 16),
		EndDate:                date(2024, 6, 20),
		ExcludeBufferConflicts: ptr.Ptr(false),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Available, 1)
}

func TestExecute_InclusiveOverlap(t *testing.T) {
	// Диапазоны, соприкасающиеся границей, пересекаются: сравнение включительное
	boats := &fakeBoatRepo{boats: []*domain.Boat{{ID: 1, Name: "Aurora"}}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 0, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 6, 15),
		EndDate:   date(2024, 6, 20),
	})

	require.NoError(t, err)
	assert.Empty(t, resp.Available)
	require.Len(t, resp.Unavailable, 1)
	assert.Equal(t, "direct", resp.Unavailable[0].Conflicts[0].Severity)
}

func TestExecute_FreeBoat(t *testing.T) {
	boats := &fakeBoatRepo{boats: []*domain.Boat{
		{ID: 1, Name: "Aurora"},
		{ID: 2, Name: "Borealis"},
	}}
	trips := &fakeTripRepo{tripsByBoat: map[int64][]*domain.Trip{
		1: {trip(10, 1, date(2024, 6, 10), date(2024, 6, 15))},
	}}
	uc := resolve_boat_schedule.NewUseCase(boats, trips, 1, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 7, 1),
		EndDate:   date(2024, 7, 8),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Available, 2)
	assert.Empty(t, resp.Unavailable)
}

func TestExecute_Validation(t *testing.T) {
	uc := resolve_boat_schedule.NewUseCase(&fakeBoatRepo{}, &fakeTripRepo{}, 1, true, nopLogger{})

	_, err := uc.Execute(context.Background(), &resolve_boat_schedule.Request{
		StartDate: date(2024, 6, 20),
		EndDate:   date(2024, 6, 10),
	})
	assert.ErrorIs(t, err, resolve_boat_schedule.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &resolve_boat_schedule.Request{})
	assert.ErrorIs(t, err, resolve_boat_schedule.ErrInvalidInput)
}
