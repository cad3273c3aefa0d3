package create_option

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/integrations/identityservice"
	"github.com/divetrip/booking-service/internal/service/capacity"
	"github.com/divetrip/booking-service/internal/service/gendercohort"
	"github.com/divetrip/booking-service/pkg/ptr"
)

// UseCase use case создания опциона (временной брони мест)
type UseCase struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	boatRepo     BoatRepository
	ledger       CapacityLedger
	genderPolicy GenderPolicy
	identity     IdentityClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tripRepo TripRepository,
	boatRepo BoatRepository,
	ledger CapacityLedger,
	genderPolicy GenderPolicy,
	identity IdentityClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		boatRepo:     boatRepo,
		ledger:       ledger,
		genderPolicy: genderPolicy,
		identity:     identity,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания опциона
//
// Резервация счетчиков и вставка рядов выполняются в одной сериализуемой
// транзакции: при любой ошибке после резервации ряды и счетчики
// откатываются вместе, частично видимых броней не остается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOption: trip=%d, owner=%d, beds=%d, gender=%s, cancelDate=%s",
		req.TripID, req.OwnerID, len(req.Beds), req.Gender, req.CancelDate.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateOption: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование владельца бронирования
	if _, err := uc.identity.GetUser(ctx, req.OwnerID); err != nil {
		if errors.Is(err, identityservice.ErrUserNotFound) {
			uc.logger.Warn("CreateOption: owner=%d not found", req.OwnerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateOption: failed to get user=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	var result []*domain.Booking

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, err := uc.reserve(txCtx, req, now)
		if err != nil {
			return err
		}
		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateOption: created %d option bookings on trip=%d", len(result), req.TripID)
	return fromDomain(req.TripID, result), nil
}

// reserve выполняет проверки и вставку внутри транзакции
func (uc *UseCase) reserve(ctx context.Context, req *Request, now time.Time) ([]*domain.Booking, error) {
	// Рейс
	trip, err := uc.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripstorage.ErrTripNotFound) {
			uc.logger.Warn("CreateOption: trip=%d not found", req.TripID)
			return nil, ErrTripNotFound
		}
		uc.logger.Error("CreateOption: failed to get trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	if trip.HasDeparted(now) {
		uc.logger.Warn("CreateOption: trip=%d has already departed", req.TripID)
		return nil, ErrTripDeparted
	}

	// Активные бронирования рейса (с блокировкой FOR UPDATE)
	active, err := uc.bookingRepo.ListActiveByTrip(ctx, req.TripID)
	if err != nil {
		uc.logger.Error("CreateOption: failed to list active bookings for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	// Проверка кают, мест и гендерной когорты
	if err := uc.validateBeds(ctx, trip, active, req, now); err != nil {
		return nil, err
	}

	// Резервация счетчиков одним условным UPDATE
	if err := uc.ledger.Reserve(ctx, req.TripID, len(req.Beds), domain.ReservationOption); err != nil {
		switch {
		case errors.Is(err, capacity.ErrCapacityExceeded):
			uc.logger.Warn("CreateOption: capacity exceeded on trip=%d for %d beds", req.TripID, len(req.Beds))
			return nil, fmt.Errorf("%w: trip=%d beds=%d", ErrCapacityExceeded, req.TripID, len(req.Beds))
		case errors.Is(err, capacity.ErrTripNotFound):
			return nil, ErrTripNotFound
		default:
			uc.logger.Error("CreateOption: ledger reserve failed for trip=%d: %v", req.TripID, err)
			return nil, fmt.Errorf("%w: ledger reserve failed: %w", ErrInternal, err)
		}
	}

	// Вставка рядов бронирований
	rows := make([]*domain.Booking, 0, len(req.Beds))
	for _, bed := range req.Beds {
		rows = append(rows, &domain.Booking{
			TripID:        req.TripID,
			CabinID:       ptr.Ptr(bed.CabinID),
			BedNumber:     bed.BedNumber,
			Status:        domain.StatusOption,
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
		if errors.Is(err, bookingstorage.ErrBedTaken) {
			uc.logger.Warn("CreateOption: bed conflict on insert for trip=%d: %v", req.TripID, err)
			return nil, fmt.Errorf("%w: %v", ErrBedTaken, err)
		}
		uc.logger.Error("CreateOption: failed to insert bookings for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: failed to insert bookings: %w", ErrInternal, err)
	}

	return created, nil
}

// validateBeds проверяет каюты, занятость мест и гендерную когорту
func (uc *UseCase) validateBeds(
	ctx context.Context,
	trip *domain.Trip,
	active []*domain.Booking,
	req *Request,
	now time.Time,
) error {
	cabins := make(map[int64]*domain.Cabin, len(req.Beds))

	for _, cabinID := range distinctCabins(req.Beds) {
		cabin, err := uc.boatRepo.GetCabin(ctx, cabinID)
		if err != nil {
			if errors.Is(err, boatstorage.ErrCabinNotFound) {
				uc.logger.Warn("CreateOption: cabin=%d not found", cabinID)
				return fmt.Errorf("%w: cabin=%d", ErrCabinNotFound, cabinID)
			}
			uc.logger.Error("CreateOption: failed to get cabin=%d: %v", cabinID, err)
			return fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
		}

		if cabin.BoatID != trip.BoatID {
			uc.logger.Warn("CreateOption: cabin=%d belongs to boat=%d, trip boat=%d",
				cabinID, cabin.BoatID, trip.BoatID)
			return fmt.Errorf("%w: cabin=%d", ErrCabinNotFound, cabinID)
		}

		cabins[cabinID] = cabin

		// Пол проверяется один раз на каюту по текущей когорте
		if err := uc.genderPolicy.ValidateAssignment(cabinID, active, req.Gender, now); err != nil {
			if errors.Is(err, gendercohort.ErrGenderConflict) {
				uc.logger.Warn("CreateOption: gender conflict in cabin=%d: %v", cabinID, err)
				return fmt.Errorf("%w: %v", ErrGenderConflict, err)
			}
			return fmt.Errorf("%w: gender validation failed: %v", ErrInternal, err)
		}
	}

	for _, bed := range req.Beds {
		cabin := cabins[bed.CabinID]
		if !cabin.HasBed(bed.BedNumber) {
			uc.logger.Warn("CreateOption: bed=%d out of range for cabin=%d (beds=%d)",
				bed.BedNumber, cabin.ID, cabin.BedCount)
			return fmt.Errorf("%w: cabin=%d bed=%d", ErrInvalidBed, bed.CabinID, bed.BedNumber)
		}
		if bedOccupied(active, bed.CabinID, bed.BedNumber) {
			uc.logger.Warn("CreateOption: bed cabin=%d bed=%d already taken", bed.CabinID, bed.BedNumber)
			return fmt.Errorf("%w: cabin=%d bed=%d", ErrBedTaken, bed.CabinID, bed.BedNumber)
		}
	}

	return nil
}
