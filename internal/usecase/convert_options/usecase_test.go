package convert_options_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divetrip/booking-service/internal/domain"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
	"github.com/divetrip/booking-service/internal/usecase/convert_options"
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
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	row := *b
	return &row, nil
}

func (f *fakeBookingRepo) UpdateStatusFrom(
	_ context.Context, id int64, from, to domain.BookingStatus, clearCancelDate bool,
) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	if b.Status != from {
		return nil, bookingstorage.ErrStatusChanged
	}
	b.Status = to
	if clearCancelDate {
		b.CancelDate = nil
	}
	row := *b
	return &row, nil
}

func futureDate(days int) time.Time {
	return time.Now().AddDate(0, 0, days)
}

func option(id int64, cancelDate time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		TripID:        1,
		CabinID:       ptr.Ptr(int64(100)),
		BedNumber:     int(id),
		Status:        domain.StatusOption,
		Gender:        domain.GenderMale,
		Price:         1500,
		OriginalPrice: 1500,
		CancelDate:    ptr.Ptr(cancelDate),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: option(1, futureDate(5)),
		2: option(2, futureDate(5)),
	}}
	uc := convert_options.NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &convert_options.Request{BookingIDs: []int64{1, 2}})

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	for _, r := range resp.Results {
		assert.True(t, r.Converted)
		assert.Empty(t, r.Reason)
		require.NotNil(t, r.Booking)
		assert.Equal(t, string(domain.StatusConfirmed), r.Booking.Status)
		// Дата истечения сбрасывается, цена не меняется
		assert.Nil(t, r.Booking.CancelDate)
		assert.Equal(t, 1500.0, r.Booking.Price)
	}
}

func TestExecute_PerRowOutcomes(t *testing.T) {
	cancelled := option(3, futureDate(5))
	cancelled.Status = domain.StatusCancelled

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: option(1, futureDate(5)),
		3: cancelled,
		4: option(4, futureDate(-2)),
	}}
	uc := convert_options.NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &convert_options.Request{
		BookingIDs: []int64{1, 2, 3, 4},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 4)

	// Отказ одного ряда не мешает остальным
	assert.True(t, resp.Results[0].Converted)

	assert.False(t, resp.Results[1].Converted)
	assert.Equal(t, convert_options.ReasonNotFound, resp.Results[1].Reason)

	assert.False(t, resp.Results[2].Converted)
	assert.Equal(t, convert_options.ReasonNotOption, resp.Results[2].Reason)

	assert.False(t, resp.Results[3].Converted)
	assert.Equal(t, convert_options.ReasonOptionExpired, resp.Results[3].Reason)
}

func TestExecute_Validation(t *testing.T) {
	uc := convert_options.NewUseCase(&fakeBookingRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &convert_options.Request{})
	assert.ErrorIs(t, err, convert_options.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &convert_options.Request{BookingIDs: []int64{0}})
	assert.ErrorIs(t, err, convert_options.ErrInvalidInput)
}

// replayingTxManager запускает замыкание дважды, как txmanager после
// отката сериализуемой транзакции (первая попытка полностью откатывается)
type replayingTxManager struct{}

func (replayingTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fn(ctx)
}

func TestExecute_TransactionReplayResetsOutcome(t *testing.T) {
	// Между попытками ряд успел стать подтвержденным: итог должен отражать
	// только последнюю попытку, без Converted=true от откатившейся первой
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: option(1, futureDate(5)),
	}}
	uc := convert_options.NewUseCase(repo, replayingTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &convert_options.Request{BookingIDs: []int64{1}})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	result := resp.Results[0]
	assert.False(t, result.Converted)
	assert.Equal(t, convert_options.ReasonNotOption, result.Reason)
	assert.Nil(t, result.Booking)
}
