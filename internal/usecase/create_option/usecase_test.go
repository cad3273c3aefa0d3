package create_option_test

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
	"github.com/divetrip/booking-service/internal/usecase/create_option"
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
) *create_option.UseCase {
	return create_option.NewUseCase(
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

	resp, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:  1,
		OwnerID: 7,
		Beds: []domain.BedSelection{
			{CabinID: 100, BedNumber: 1},
			{CabinID: 100, BedNumber: 2},
		},
		Gender:     domain.GenderFemale,
		GroupName:  "dive club",
		CancelDate: futureDate(10),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, 2, ledger.reserved)
	for _, b := range resp.Bookings {
		assert.Equal(t, string(domain.StatusOption), b.Status)
		assert.Equal(t, 1500.0, b.Price)
		assert.Equal(t, 1500.0, b.OriginalPrice)
		require.NotNil(t, b.CancelDate)
	}
}

func TestExecute_CapacityExceeded(t *testing.T) {
	bookings := &fakeBookingRepo{}
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		100: {ID: 100, BoatID: 10, BedCount: 4},
	}}
	ledger := &fakeLedger{available: 1}
	uc := newUseCase(bookings, trips, boats, ledger, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:  1,
		OwnerID: 7,
		Beds: []domain.BedSelection{
			{CabinID: 100, BedNumber: 1},
			{CabinID: 100, BedNumber: 2},
		},
		Gender:     domain.GenderMale,
		CancelDate: futureDate(10),
	})

	assert.ErrorIs(t, err, create_option.ErrCapacityExceeded)
	assert.Empty(t, bookings.inserted)
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

	_, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:     1,
		OwnerID:    7,
		Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 2}},
		Gender:     domain.GenderFemale,
		CancelDate: futureDate(10),
	})

	assert.ErrorIs(t, err, create_option.ErrGenderConflict)
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

	_, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:     1,
		OwnerID:    7,
		Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 2}},
		Gender:     domain.GenderFemale,
		CancelDate: futureDate(10),
	})

	assert.ErrorIs(t, err, create_option.ErrBedTaken)
}

func TestExecute_CabinFromAnotherBoat(t *testing.T) {
	trips := &fakeTripRepo{trip: newTrip()}
	boats := &fakeBoatRepo{cabins: map[int64]*domain.Cabin{
		200: {ID: 200, BoatID: 99, BedCount: 2},
	}}
	uc := newUseCase(&fakeBookingRepo{}, trips, boats, &fakeLedger{available: 10}, &fakeIdentity{})

	_, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:     1,
		OwnerID:    7,
		Beds:       []domain.BedSelection{{CabinID: 200, BedNumber: 1}},
		Gender:     domain.GenderMale,
		CancelDate: futureDate(10),
	})

	assert.ErrorIs(t, err, create_option.ErrCabinNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeTripRepo{trip: newTrip()},
		&fakeBoatRepo{}, &fakeLedger{available: 10}, &fakeIdentity{missing: true})

	_, err := uc.Execute(context.Background(), &create_option.Request{
		TripID:     1,
		OwnerID:    7,
		Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
		Gender:     domain.GenderMale,
		CancelDate: futureDate(10),
	})

	assert.ErrorIs(t, err, create_option.ErrUserNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newUseCase(&fakeBookingRepo{}, &fakeTripRepo{trip: newTrip()},
		&fakeBoatRepo{}, &fakeLedger{available: 10}, &fakeIdentity{})

	tests := []struct {
		name string
		req  *create_option.Request
	}{
		{
			name: "без мест",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7, Gender: domain.GenderMale, CancelDate: futureDate(10),
			},
		},
		{
			name: "без пола",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7,
				Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
				CancelDate: futureDate(10),
			},
		},
		{
			name: "без даты истечения",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7,
				Beds:   []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
				Gender: domain.GenderMale,
			},
		},
		{
			name: "дата истечения в прошлом",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7,
				Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 1}},
				Gender:     domain.GenderMale,
				CancelDate: futureDate(-5),
			},
		},
		{
			name: "номер места из зоны листа ожидания",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7,
				Beds:       []domain.BedSelection{{CabinID: 100, BedNumber: 1000}},
				Gender:     domain.GenderMale,
				CancelDate: futureDate(10),
			},
		},
		{
			name: "дубль места в запросе",
			req: &create_option.Request{
				TripID: 1, OwnerID: 7,
				Beds: []domain.BedSelection{
					{CabinID: 100, BedNumber: 1},
					{CabinID: 100, BedNumber: 1},
				},
				Gender:     domain.GenderMale,
				CancelDate: futureDate(10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, create_option.ErrInvalidInput)
		})
	}
}
