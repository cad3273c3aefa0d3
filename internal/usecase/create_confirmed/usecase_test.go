package create_confirmed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/integrations/identityservice"
	"github.com/divetrip/booking-service/internal/service/capacity"
	"github.com/divetrip/booking-service/internal/service/gendercohort"
	"github.com/divetrip/booking-service/internal/usecase/create_confirmed"
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

func (f *fakeLedger) Reserve(_ context.Context, _ int64, spots int, kind domain.ReservationKind) error {
	if kind == domain.ReservationWaitlist {
		return nil
	}
	if f.available < spots {
		return capacity.ErrCapacityExceeded
	}
	f.available -= spots
	f.reserved += spots
	return nil
}

type fakeIdentity struct {
	missing bool
}

func (f *fakeIdentity) GetUser(_ context.Context, id int64) (*identityservice.User, error) {
	if f.missing {
		return nil, identityservice.ErrUserNotFound
	}
	return &identityservice.User{ID: id, Name: "Test User"}, nil
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func newTrip() *domain.Trip {
	return &domain.Trip{
		ID:             1,
		BoatID:         10,
		StartDate:      futureDate(30),
		EndDate:        futureDate(37),
		Capacity:       10,
		BookedSpots:    0,
		AvailableSpots: 10,
		PricePerSpot:   1500,
	}
}

func newUseCase(
	bookings *fakeBookingRepo,
	trips *fakeTripRepo,
	boats *fakeBoatRepo,
	ledger *fakeLedger,
	identity *fakeIdentity,
) *create_confirmed.UseCase {
	return create_confirmed.NewUseCase(
		bookings,
		trips,
		boats,
		ledger,
		gendercohort.NewService(),
		identity,
		fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 4},
	}}
	ledger := &fakeLedger{available: 10}
	uc := newUseCase(bookings, trips, boats, ledger, &fakeIdentity{})

	resp, err := uc.Execute(context.Background(), &create_confirmed.Request{
		TripID:  1,
		OwnerID: 7,
		Beds: []domain.BedSelection{
			{CabinID: 100, BedNumber: 1},
			{CabinID: 100, BedNumber: 2},
		},
		Gender:    domain.GenderFemale,
		GroupName: "dive club",
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2, ledger.reserved)
	for _, b := range resp.Bookings {
		assert.Equal(t, string(domain.StatusConfirmed), b.Status)
		assert.Equal(t, 1500.0, b.Price)
		assert.Equal(t, 1500.0, b.OriginalPrice)
		// Подтвержденное бронирование не имеет дедлайна
		assert.Nil(t, b.CancelDate)
	}
}

func TestExecute_CapacityExceededByOneSpot(t *testing.T) {
	// Запрошено N мест при N-1 свободных: отказ без вставленных рядов
	// и без изменения счетчиков
	bookings := &fakeBookingRepo{}
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 4},
	}}
	ledger := &fakeLedger{available: 1}
	uc := newUseCase(bookings, trips, boats, ledger, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &create_confirmed.Request{
		TripID:  1,
		OwnerID: 7,
		Beds: []domain.BedSelection{
			{CabinID: 100, BedNumber: 1},
			{CabinID: 100, BedNumber: 2},
		},
		Gender: domain.GenderMale,
	})

	assert.ErrorIs(t, err, create_confirmed.ErrCapacityExceeded)
	assert.Empty(t, bookings.inserted)
	assert.Equal(t, 1, ledger.available)
	assert.Zero(t, ledger.reserved)
}

func TestExecute_GenderConflict(t *testing.T) {
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
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 4},
	}}
	uc := newUseCase(bookings, trips, boats, &fakeLedger{available: 10}, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &create_confirmed.Request{
		TripID:  1,
		OwnerID: 7,
		Beds:    []domain.BedSelection{{CabinID: 100, BedNumber: 2}},
		Gender:  domain.GenderFemale,
	})

	assert.ErrorIs(t, err, create_confirmed.ErrGenderConflict)
}

func TestExecute_BedTaken(t *testing.T) {
	bookings := &fakeBookingRepo{
		active: []*domain.Booking{{
			ID:        1,
			TripID:    1,
			CabinID:   ptr.Ptr(int64(100)),
			BedNumber: 2,
			Status:    domain.StatusOption,
			Gender:    domain.GenderFemale,
		}},
	}
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 4},
	}}
	uc := newUseCase(bookings, trips, boats, &fakeLedger{available: 10}, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &create_confirmed.Request{
		TripID:  1,
		OwnerID: 7,
		Beds:    []domain.BedSelection{{CabinID: 100, BedNumber: 2}},
		Gender:  domain.GenderFemale,
	})

	assert.ErrorIs(t, err, create_confirmed.ErrBedTaken)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeTripRepo{trip: newTrip()},
		&fakeBoatRepo{}, &fakeLedger{available: 10}, &fakeIdentity{missing: true})

	_, err := uc.Execute(context.Background(), &create_confirmed.Request{
		TripID:  1,
		OwnerID: 7,
		Beds:    []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
		Gender:  domain.GenderMale,
	})

	assert.ErrorIs(t, err, create_confirmed.ErrUserNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeTripRepo{trip: newTrip()},
		&fakeBoatRepo{}, &fakeLedger{available: 10}, &fakeIdentity{})

	tests := []struct {
		name string
		req  *create_confirmed.Request
	}{
		{
			name: "без мест",
			req: &create_confirmed.Request{
				TripID: 1, OwnerID: 7, Gender: domain.GenderMale,
			},
		},
		{
			name: "без пола",
			req: &create_confirmed.Request{
				TripID: 1, OwnerID: 7,
				Beds: []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
			},
		},
		{
			name: "номер места из зоны листа ожидания",
			req: &create_confirmed.Request{
				TripID: 1, OwnerID: 7,
				Beds:   []domain.BedSelection{{CabinID: 100, BedNumber: 1000}},
				Gender: domain.GenderMale,
			},
		},
		{
			name: "дубль места в запросе",
			req: &create_confirmed.Request{
				TripID: 1, OwnerID: 7,
				Beds: []domain.BedSelection{
					{CabinID: 100, BedNumber: 1},
					{CabinID: 100, BedNumber: 1},
				},
				Gender: domain.GenderMale,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, create_confirmed.ErrInvalidInput)
		})
	}
}
