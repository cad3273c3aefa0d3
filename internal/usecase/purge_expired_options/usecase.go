package purge_expired_options

import (
	"context"
	"errors"
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
)

// Request модель запроса на очистку просроченных опционов рейса
type Request struct {
	TripID int64 // ID рейса
}

// Response модель ответа с результатом очистки
type Response struct {
	TripID        int64   // ID рейса
	PurgedIDs     []int64 // ID удаленных опционов
	ReleasedSpots int     // Количество возвращенных в леджер мест
}

// UseCase use case очистки просроченных опционов
//
// Просроченный опцион скрывается из активных выборок на чтении, но
// продолжает занимать место и ряд в хранилище. Эта операция удаляет такие
// ряды и возвращает их места в леджер одним атомарным действием
type UseCase struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	ledger       CapacityLedger
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	ledger CapacityLedger,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		ledger:       ledger,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case очистки просроченных опционов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PurgeExpiredOptions: trip=%d", req.TripID)

	if req.TripID <= 0 {
		uc.logger.Warn("PurgeExpiredOptions: invalid tripID=%d", req.TripID)
		return nil, fmt.Errorf("%w: tripID must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	resp := &Response{TripID: req.TripID}

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if _, err := uc.tripRepo.GetByID(txCtx, req.TripID); err != nil {
			if errors.Is(err, tripstorage.ErrTripNotFound) {
				uc.logger.Warn("PurgeExpiredOptions: trip=%d not found", req.TripID)
				return ErrTripNotFound
			}
			uc.logger.Error("PurgeExpiredOptions: failed to get trip=%d: %v", req.TripID, err)
			return fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
		}

		active, err := uc.bookingRepo.ListActiveByTrip(txCtx, req.TripID)
		if err != nil {
			uc.logger.Error("PurgeExpiredOptions: failed to list active bookings for trip=%d: %v", req.TripID, err)
			return fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
		}

		expired := make([]int64, 0)
		for _, b := range active {
			if b.IsExpiredOption(now) {
				expired = append(expired, b.ID)
			}
		}

		if len(expired) == 0 {
			return nil
		}

		deleted, err := uc.bookingRepo.DeleteMany(txCtx, expired)
		if err != nil {
			uc.logger.Error("PurgeExpiredOptions: failed to delete expired options for trip=%d: %v", req.TripID, err)
			return fmt.Errorf("%w: failed to delete expired options: %w", ErrInternal, err)
		}

		// Удаление и возврат мест в одной транзакции: либо исчезают и ряды,
		// и их вклад в счетчики, либо ничего
		if deleted > 0 {
			if err := uc.ledger.Release(txCtx, req.TripID, int(deleted), domain.ReservationOption); err != nil {
				uc.logger.Error("PurgeExpiredOptions: failed to release %d spots for trip=%d: %v",
					deleted, req.TripID, err)
				return fmt.Errorf("%w: failed to release spots: %w", ErrInternal, err)
			}
		}

		resp.PurgedIDs = expired
		resp.ReleasedSpots = int(deleted)
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PurgeExpiredOptions: trip=%d purged %d expired options", req.TripID, len(resp.PurgedIDs))
	return resp, nil
}
