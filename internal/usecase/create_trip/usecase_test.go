package create_trip_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
	"github.com/divetrip/booking-service/internal/usecase/create_trip"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBoatRepo struct {
	boat   *domain.Boat
	cabins []*domain.Cabin
}

func (f *fakeBoatRepo) GetByID(_ context.Context, id int64) (*domain.Boat, error) {
	if f.boat == nil || f.boat.ID != id {
		return nil, boatstorage.ErrBoatNotFound
	}
	return f.boat, nil
}

func (f *fakeBoatRepo) ListCabins(_ context.Context, _ int64) ([]*domain.Cabin, error) {
	return f.cabins, nil
}

type fakeTripRepo struct {
	trips  []*domain.Trip
	nextID int64
}

func (f *fakeTripRepo) Create(_ context.Context, t *domain.Trip) (*domain.Trip, error) {
	f.nextID++
	created := *t
	created.ID = f.nextID
	created.AvailableSpots = created.Capacity
	f.trips = append(f.trips, &created)
	return &created, nil
}

func (f *fakeTripRepo) ListByBoat(_ context.Context, _ int64) ([]*domain.Trip, error) {
	return f.trips, nil
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func newBoatRepo() *fakeBoatRepo {
	return &fakeBoatRepo{
		boat: &domain.Boat{ID: 10, Name: "Aurora"},
		cabins: []*domain.Cabin{
			{ID: 100, BoatID: 10, BedCount: 2},
			{ID: 101, BoatID: 10, BedCount: 4},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	trips := &fakeTripRepo{}
	uc := create_trip.NewUseCase(newBoatRepo(), trips, fakeTxManager{}, 1, true, nopLogger{})

	resp, err := uc.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		Name:         "Red Sea North",
		StartDate:    futureDate(30),
		EndDate:      futureDate(37),
		PricePerSpot: 1500,
	})

	require.NoError(t, err)
	// Вместимость выводится из кают лодки
	assert.Equal(t, 6, resp.Capacity)
	assert.Equal(t, 6, resp.AvailableSpots)
	assert.Equal(t, 0, resp.BookedSpots)
}

func TestExecute_DirectConflict(t *testing.T) {
	trips := &fakeTripRepo{trips: []*domain.Trip{{
		ID: 1, BoatID: 10, StartDate: futureDate(30), EndDate: futureDate(37),
	}}}
	uc := create_trip.NewUseCase(newBoatRepo(), trips, fakeTxManager{}, 1, false, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		StartDate:    futureDate(35),
		EndDate:      futureDate(42),
		PricePerSpot: 1500,
	})

	assert.ErrorIs(t, err, create_trip.ErrScheduleConflict)
}

func TestExecute_BufferConflictPerPolicy(t *testing.T) {
	existing := &domain.Trip{ID: 1, BoatID: 10, StartDate: futureDate(30), EndDate: futureDate(37)}

	// При строгой политике буферный день между рейсами обязателен
	trips := &fakeTripRepo{trips: []*domain.Trip{existing}}
	strict := create_trip.NewUseCase(newBoatRepo(), trips, fakeTxManager{}, 1, true, nopLogger{})

	_, err := strict.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		StartDate:    futureDate(38),
		EndDate:      futureDate(45),
		PricePerSpot: 1500,
	})
	assert.ErrorIs(t, err, create_trip.ErrScheduleConflict)

	// При мягкой политике рейс встык допустим
	soft := create_trip.NewUseCase(newBoatRepo(), &fakeTripRepo{trips: []*domain.Trip{existing}},
		fakeTxManager{}, 1, false, nopLogger{})

	_, err = soft.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		StartDate:    futureDate(38),
		EndDate:      futureDate(45),
		PricePerSpot: 1500,
	})
	assert.NoError(t, err)
}

func TestExecute_BoatNotFound(t *testing.T) {
	uc := create_trip.NewUseCase(&fakeBoatRepo{}, &fakeTripRepo{}, fakeTxManager{}, 1, true, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_trip.Request{
		BoatID:       42,
		StartDate:    futureDate(30),
		EndDate:      futureDate(37),
		PricePerSpot: 1500,
	})

	assert.ErrorIs(t, err, create_trip.ErrBoatNotFound)
}

func TestExecute_BoatWithoutCabins(t *testing.T) {
	repo := &fakeBoatRepo{boat: &domain.Boat{ID: 10, Name: "Aurora"}}
	uc := create_trip.NewUseCase(repo, &fakeTripRepo{}, fakeTxManager{}, 1, true, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		StartDate:    futureDate(30),
		EndDate:      futureDate(37),
		PricePerSpot: 1500,
	})

	assert.ErrorIs(t, err, create_trip.ErrBoatWithoutCabins)
}

func TestExecute_Validation(t *testing.T) {
	uc := create_trip.NewUseCase(newBoatRepo(), &fakeTripRepo{}, fakeTxManager{}, 1, true, nopLogger{})

	_, err := uc.Execute(context.Background(), &create_trip.Request{
		BoatID:       10,
		StartDate:    futureDate(37),
		EndDate:      futureDate(30),
		PricePerSpot: 1500,
	})
	assert.ErrorIs(t, err, create_trip.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &create_trip.Request{
		BoatID:    10,
		StartDate: futureDate(30),
		EndDate:   futureDate(37),
	})
	assert.ErrorIs(t, err, create_trip.ErrInvalidInput)
}
