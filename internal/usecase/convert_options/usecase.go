package convert_options

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
)

// Ограниченное число повторов при конкурентном изменении статуса
const maxConvertRetries = 3

// UseCase use case конвертации опционов в подтвержденные бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case конвертации опционов
//
// Конвертация выполняется по одному ряду: отказ одного бронирования не
// блокирует и не откатывает остальные, вызывающий получает исход по
// каждому ID. Счетчики мест не меняются: опцион и подтвержденное
// бронирование учитываются в одном бакете
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConvertOptions: ids=%v", req.BookingIDs)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConvertOptions: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	results := make([]Result, 0, len(req.BookingIDs))
	converted := 0

	for _, id := range req.BookingIDs {
		result := uc.convertOne(ctx, id, now)
		if result.Converted {
			converted++
		}
		results = append(results, result)
	}

	uc.logger.Info("ConvertOptions: converted %d of %d bookings", converted, len(req.BookingIDs))
	return &Response{Results: results}, nil
}

// convertOne конвертирует один опцион в отдельной транзакции
func (uc *UseCase) convertOne(ctx context.Context, id int64, now time.Time) Result {
	result := Result{BookingID: id}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Менеджер перезапускает замыкание после serialization rollback:
		// исход откатившейся попытки не должен пережить перезапуск
		result = Result{BookingID: id}

		for attempt := 0; attempt < maxConvertRetries; attempt++ {
			booking, err := uc.bookingRepo.GetByID(txCtx, id)
			if err != nil {
				if errors.Is(err, bookingstorage.ErrBookingNotFound) {
					result.Reason = ReasonNotFound
					return nil
				}
				return fmt.Errorf("failed to get booking: %w", err)
			}

			if booking.Status != domain.StatusOption {
				result.Reason = ReasonNotOption
				return nil
			}

			if booking.IsExpiredOption(now) {
				result.Reason = ReasonOptionExpired
				return nil
			}

			updated, err := uc.bookingRepo.UpdateStatusFrom(
				txCtx, id, domain.StatusOption, domain.StatusConfirmed, true)
			if err != nil {
				if errors.Is(err, bookingstorage.ErrStatusChanged) {
					// Статус изменился между чтением и записью:
					// перечитываем и пробуем снова
					continue
				}
				if errors.Is(err, bookingstorage.ErrBookingNotFound) {
					result.Reason = ReasonNotFound
					return nil
				}
				return fmt.Errorf("failed to update status: %w", err)
			}

			result.Converted = true
			result.Booking = toBooking(updated)
			return nil
		}

		result.Reason = ReasonStatusChanged
		return nil
	})

	if err != nil {
		uc.logger.Error("ConvertOptions: booking=%d failed: %v", id, err)
		result.Converted = false
		result.Booking = nil
		result.Reason = ReasonInternalError
	}

	return result
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
