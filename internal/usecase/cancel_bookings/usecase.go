package cancel_bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
)

// UseCase use case отмены бронирований
type UseCase struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	ledger       CapacityLedger
	penaltyCalc  PenaltyCalculator
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	ledger CapacityLedger,
	penaltyCalc PenaltyCalculator,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		ledger:       ledger,
		penaltyCalc:  penaltyCalc,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены бронирований
//
// Отмена выполняется по одному ряду: отказ одного бронирования не
// блокирует и не откатывает остальные. Для подтвержденных бронирований
// рассчитывается штраф по дате начала рейса, опцион и лист ожидания
// отменяются без штрафа. Освобождение счетчиков и смена статуса
// выполняются в одной транзакции на каждый ряд
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBookings: ids=%v", req.BookingIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBookings: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	results := make([]Result, 0, len(req.BookingIDs))
	cancelled := 0

	for _, id := range req.BookingIDs {
		result := uc.cancelOne(ctx, id, now)
		if result.Cancelled {
			cancelled++
		}
		results = append(results, result)
	}

	uc.logger.Info("CancelBookings: cancelled %d of %d bookings", cancelled, len(req.BookingIDs))
	return &Response{Results: results}, nil
}

// cancelOne отменяет одно бронирование в отдельной транзакции
func (uc *UseCase) cancelOne(ctx context.Context, id int64, now time.Time) Result {
	result := Result{BookingID: id}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Менеджер перезапускает замыкание после serialization rollback:
		// исход откатившейся попытки не должен пережить перезапуск
		result = Result{BookingID: id}

		booking, err := uc.bookingRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrBookingNotFound) {
				result.Reason = ReasonNotFound
				return nil
			}
			return fmt.Errorf("failed to get booking: %w", err)
		}

		if !booking.CanBeCancelled() {
			result.Reason = ReasonAlreadyCancelled
			return nil
		}

		// Штраф информационный: рассчитывается до смены статуса,
		// по статусу на момент отмены
		if booking.Status == domain.StatusConfirmed {
			trip, err := uc.tripRepo.GetByID(txCtx, booking.TripID)
			if err != nil {
				return fmt.Errorf("failed to get trip: %w", err)
			}
			p := uc.penaltyCalc.Calculate(trip.StartDate, now, booking.Status)
			result.PenaltyPercent = p.Percent
			result.PenaltyTier = string(p.Tier)
		}

		if _, err := uc.bookingRepo.UpdateStatusFrom(
			txCtx, id, booking.Status, domain.StatusCancelled, false); err != nil {
			if errors.Is(err, bookingstorage.ErrStatusChanged) || errors.Is(err, bookingstorage.ErrBookingNotFound) {
				result.Reason = ReasonStatusChanged
				result.PenaltyPercent = 0
				result.PenaltyTier = ""
				return nil
			}
			return fmt.Errorf("failed to update status: %w", err)
		}

		// Опцион и подтвержденное бронирование возвращают место в леджер,
		// лист ожидания мест не занимал
		kind := reservationKind(booking.Status)
		if err := uc.ledger.Release(txCtx, booking.TripID, 1, kind); err != nil {
			return fmt.Errorf("failed to release capacity: %w", err)
		}

		result.Cancelled = true
		return nil
	})

	if err != nil {
		uc.logger.Error("CancelBookings: booking=%d failed: %v", id, err)
		result = Result{BookingID: id, Reason: ReasonInternalError}
	}

	return result
}

// reservationKind сопоставляет статус бронирования виду резервации леджера
func reservationKind(status domain.BookingStatus) domain.ReservationKind {
	switch status {
	case domain.StatusOption:
		return domain.ReservationOption
	case domain.StatusConfirmed:
		return domain.ReservationConfirmed
	default:
		return domain.ReservationWaitlist
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if len(req.BookingIDs) == 0 {
		return fmt.Errorf("%w: at least one bookingID is required", ErrInvalidInput)
	}
	for _, id := range req.BookingIDs {
		if id <= 0 {
			return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
		}
	}
	return nil
}
