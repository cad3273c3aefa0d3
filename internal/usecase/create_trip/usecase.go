package create_trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
)

// UseCase use case создания рейса
type UseCase struct {
	boatRepo  BoatRepository
	tripRepo  TripRepository
	txManager TransactionManager

	bufferDays             int
	excludeBufferConflicts bool

	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	boatRepo BoatRepository,
	tripRepo TripRepository,
	txManager TransactionManager,
	bufferDays int,
	excludeBufferConflicts bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		boatRepo:               boatRepo,
		tripRepo:               tripRepo,
		txManager:              txManager,
		bufferDays:             bufferDays,
		excludeBufferConflicts: excludeBufferConflicts,
		timeProvider:           &RealTimeProvider{},
		logger:                 logger,
	}
}

// Execute выполняет use case создания рейса
//
// Вместимость рейса выводится из кают лодки, расписание проверяется
// с учетом буферных дней: прямой конфликт запрещает создание всегда,
// буферный - в зависимости от политики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTrip: boat=%d, range=[%s, %s], price=%.2f",
		req.BoatID, req.StartDate.Format(domain.DateFormat),
		req.EndDate.Format(domain.DateFormat), req.PricePerSpot)

	now := uc.timeProvider.Now()

	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateTrip: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Trip

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.create(txCtx, req)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateTrip: created trip=%d on boat=%d, capacity=%d",
		result.ID, result.BoatID, result.Capacity)
	return fromDomain(result), nil
}

// create выполняет проверки и вставку внутри транзакции
func (uc *UseCase) create(ctx context.Context, req *Request) (*domain.Trip, error) {
	if _, err := uc.boatRepo.GetByID(ctx, req.BoatID); err != nil {
		if errors.Is(err, boatstorage.ErrBoatNotFound) {
			uc.logger.Warn("CreateTrip: boat=%d not found", req.BoatID)
			return nil, ErrBoatNotFound
		}
		uc.logger.Error("CreateTrip: failed to get boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to get boat: %v", ErrInternal, err)
	}

	cabins, err := uc.boatRepo.ListCabins(ctx, req.BoatID)
	if err != nil {
		uc.logger.Error("CreateTrip: failed to list cabins for boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to list cabins: %v", ErrInternal, err)
	}

	capacity := domain.TotalBeds(cabins)
	if capacity == 0 {
		uc.logger.Warn("CreateTrip: boat=%d has no cabins", req.BoatID)
		return nil, ErrBoatWithoutCabins
	}

	if err := uc.checkSchedule(ctx, req); err != nil {
		return nil, err
	}

	trip := &domain.Trip{
		BoatID:       req.BoatID,
		Name:         req.Name,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Capacity:     capacity,
		PricePerSpot: req.PricePerSpot,
	}

	created, err := uc.tripRepo.Create(ctx, trip)
	if err != nil {
		uc.logger.Error("CreateTrip: failed to create trip on boat=%d: %v", req.BoatID, err)
		return nil, fmt.Errorf("%w: failed to create trip: %w", ErrInternal, err)
	}

	return created, nil
}

// checkSchedule проверяет диапазон нового рейса против существующих рейсов
// лодки с учетом буферных дней
func (uc *UseCase) checkSchedule(ctx context.Context, req *Request) error {
	trips, err := uc.tripRepo.ListByBoat(ctx, req.BoatID)
	if err != nil {
		uc.logger.Error("CreateTrip: failed to list trips for boat=%d: %v", req.BoatID, err)
		return fmt.Errorf("%w: failed to list trips: %v", ErrInternal, err)
	}

	requested := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	buffered := requested.Buffered(uc.bufferDays)

	for _, t := range trips {
		tripRange := t.Range()

		if tripRange.Overlaps(requested) {
			uc.logger.Warn("CreateTrip: direct conflict with trip=%d on boat=%d", t.ID, req.BoatID)
			return fmt.Errorf("%w: trip=%d (direct)", ErrScheduleConflict, t.ID)
		}

		if uc.excludeBufferConflicts && tripRange.Overlaps(buffered) {
			uc.logger.Warn("CreateTrip: buffer conflict with trip=%d on boat=%d", t.ID, req.BoatID)
			return fmt.Errorf("%w: trip=%d (buffer)", ErrScheduleConflict, t.ID)
		}
	}

	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.BoatID <= 0 {
		return fmt.Errorf("%w: boatID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	r := domain.DateRange{Start: req.StartDate, End: req.EndDate}
	if !r.IsValid() {
		return fmt.Errorf("%w: startDate is after endDate", ErrInvalidInput)
	}

	if req.EndDate.Before(now) {
		return fmt.Errorf("%w: trip ends in the past", ErrInvalidInput)
	}

	if req.PricePerSpot <= 0 {
		return fmt.Errorf("%w: pricePerSpot must be positive", ErrInvalidInput)
	}

	return nil
}
