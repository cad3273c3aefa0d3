package create_waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/integrations/identityservice"
	"github.com/divetrip/booking-service/pkg/ptr"
)

// UseCase use case постановки в лист ожидания
type UseCase struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	identity     IdentityClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	identity IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		identity:     identity,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case постановки в лист ожидания
//
// Записи листа ожидания не трогают счетчики мест и не занимают каюты:
// номер места выдается из синтетической зоны, монотонно выше любого
// ранее выданного номера на этом рейсе (включая отмененные записи)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateWaitlist: trip=%d, owner=%d, count=%d, gender=%s",
		req.TripID, req.OwnerID, req.Count, req.Gender)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateWaitlist: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.identity.GetUser(ctx, req.OwnerID); err != nil {
		if errors.Is(err, identityservice.ErrUserNotFound) {
			uc.logger.Warn("CreateWaitlist: owner=%d not found", req.OwnerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateWaitlist: failed to get user=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result []*domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.enqueue(txCtx, req, now)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateWaitlist: created %d waitlist entries on trip=%d", len(result), req.TripID)
	return fromDomain(req.TripID, result), nil
}

// enqueue проверяет лимит листа ожидания и вставляет записи внутри транзакции
func (uc *UseCase) enqueue(ctx context.Context, req *Request, now time.Time) ([]*domain.Booking, error) {
	trip, err := uc.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripstorage.ErrTripNotFound) {
			uc.logger.Warn("CreateWaitlist: trip=%d not found", req.TripID)
			return nil, ErrTripNotFound
		}
		uc.logger.Error("CreateWaitlist: failed to get trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	if trip.HasDeparted(now) {
		uc.logger.Warn("CreateWaitlist: trip=%d has already departed", req.TripID)
		return nil, ErrTripDeparted
	}

	active, err := uc.bookingRepo.ListActiveByTrip(ctx, req.TripID)
	if err != nil {
		uc.logger.Error("CreateWaitlist: failed to list active bookings for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	// Лист ожидания ограничен числом живых опционов: только держатели
	// опционов могут освободить места
	optionCount := countLiveOptions(active, now)
	if optionCount == 0 || req.Count > optionCount {
		uc.logger.Warn("CreateWaitlist: limit exceeded on trip=%d: requested=%d, options=%d",
			req.TripID, req.Count, optionCount)
		return nil, fmt.Errorf("%w: requested=%d, options=%d", ErrWaitlistLimitExceeded, req.Count, optionCount)
	}

	maxBed, err := uc.bookingRepo.MaxWaitlistBed(ctx, req.TripID)
	if err != nil {
		uc.logger.Error("CreateWaitlist: failed to get max waitlist bed for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get max waitlist bed: %v", ErrInternal, err)
	}

	nextBed := maxBed + 1
	if nextBed < domain.WaitlistBedBandStart {
		nextBed = domain.WaitlistBedBandStart
	}

	rows := make([]*domain.Booking, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		rows = append(rows, &domain.Booking{
			TripID:        req.TripID,
			CabinID:       nil,
			BedNumber:     nextBed + i,
			Status:        domain.StatusWaitlist,
			Gender:        req.Gender,
			GroupName:     req.GroupName,
			Price:         trip.PricePerSpot,
			OriginalPrice: trip.PricePerSpot,
			CancelDate:    ptr.Ptr(req.CancelDate),
			OwnerID:       req.OwnerID,
		})
	}

	created, err := uc.bookingRepo.InsertMany(ctx, rows)
	if err != nil {
		uc.logger.Error("CreateWaitlist: failed to insert waitlist entries for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to insert waitlist entries: %w", ErrInternal, err)
	}

	return created, nil
}

// countLiveOptions считает активные непросроченные опционы рейса
func countLiveOptions(active []*domain.Booking, now time.Time) int {
	count := 0
	for _, b := range active {
		if b.Status == domain.StatusOption && !b.IsExpiredOption(now) {
			count++
		}
	}
	return count
}
