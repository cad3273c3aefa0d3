package promote_waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	boatstorage "github.com/divetrip/booking-service/internal/infra/storage/boat"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripstorage "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/service/capacity"
	"github.com/divetrip/booking-service/internal/service/gendercohort"
)

// UseCase use case повышения записи листа ожидания до подтвержденного
// бронирования на конкретном месте
type UseCase struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	boatRepo     BoatRepository
	ledger       CapacityLedger
	genderPolicy GenderPolicy
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
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		boatRepo:     boatRepo,
		ledger:       ledger,
		genderPolicy: genderPolicy,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case повышения записи листа ожидания
//
// Запись листа ожидания не занимала место в леджере, поэтому повышение
// резервирует место так же, как новое подтвержденное бронирование:
// один условный UPDATE счетчиков в той же транзакции, что и смена статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PromoteWaitlist: booking=%d, cabin=%d, bed=%d",
		req.BookingID, req.Bed.CabinID, req.Bed.BedNumber)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PromoteWaitlist: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		promoted, err := uc.promote(txCtx, req, now)
		if err != nil {
			return err
		}
		result = promoted
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PromoteWaitlist: booking=%d promoted to confirmed on cabin=%d bed=%d",
		result.ID, req.Bed.CabinID, req.Bed.BedNumber)
	return fromDomain(result), nil
}

// promote выполняет проверки и смену статуса внутри транзакции
func (uc *UseCase) promote(ctx context.Context, req *Request, now time.Time) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			uc.logger.Warn("PromoteWaitlist: booking=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("PromoteWaitlist: failed to get booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.Status != domain.StatusWaitlist {
		uc.logger.Warn("PromoteWaitlist: booking=%d has status=%s", req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: status=%s", ErrNotWaitlist, booking.Status)
	}

	trip, err := uc.tripRepo.GetByID(ctx, booking.TripID)
	if err != nil {
		if errors.Is(err, tripstorage.ErrTripNotFound) {
			return nil, ErrTripNotFound
		}
		uc.logger.Error("PromoteWaitlist: failed to get trip=%d: %v", booking.TripID, err)
		return nil, fmt.Errorf("%w: failed to get trip: %v", ErrInternal, err)
	}

	if trip.HasDeparted(now) {
		uc.logger.Warn("PromoteWaitlist: trip=%d has already departed", trip.ID)
		return nil, ErrTripDeparted
	}

	cabin, err := uc.boatRepo.GetCabin(ctx, req.Bed.CabinID)
	if err != nil {
		if errors.Is(err, boatstorage.ErrCabinNotFound) {
			uc.logger.Warn("PromoteWaitlist: cabin=%d not found", req.Bed.CabinID)
			return nil, fmt.Errorf("%w: cabin=%d", ErrCabinNotFound, req.Bed.CabinID)
		}
		uc.logger.Error("PromoteWaitlist: failed to get cabin=%d: %v", req.Bed.CabinID, err)
		return nil, fmt.Errorf("%w: failed to get cabin: %v", ErrInternal, err)
	}

	if cabin.BoatID != trip.BoatID {
		uc.logger.Warn("PromoteWaitlist: cabin=%d belongs to boat=%d, trip boat=%d",
			cabin.ID, cabin.BoatID, trip.BoatID)
		return nil, fmt.Errorf("%w: cabin=%d", ErrCabinNotFound, cabin.ID)
	}

	if !cabin.HasBed(req.Bed.BedNumber) {
		uc.logger.Warn("PromoteWaitlist: bed=%d out of range for cabin=%d (beds=%d)",
			req.Bed.BedNumber, cabin.ID, cabin.BedCount)
		return nil, fmt.Errorf("%w: cabin=%d bed=%d", ErrInvalidBed, cabin.ID, req.Bed.BedNumber)
	}

	active, err := uc.bookingRepo.ListActiveByTrip(ctx, booking.TripID)
	if err != nil {
		uc.logger.Error("PromoteWaitlist: failed to list active bookings for trip=%d: %v", booking.TripID, err)
		return nil, fmt.Errorf("%w: failed to list active bookings: %v", ErrInternal, err)
	}

	for _, b := range active {
		if b.ID == booking.ID || !b.IsActive() {
			continue
		}
		if b.CabinID != nil && *b.CabinID == req.Bed.CabinID && b.BedNumber == req.Bed.BedNumber {
			uc.logger.Warn("PromoteWaitlist: bed cabin=%d bed=%d already taken", req.Bed.CabinID, req.Bed.BedNumber)
			return nil, fmt.Errorf("%w: cabin=%d bed=%d", ErrBedTaken, req.Bed.CabinID, req.Bed.BedNumber)
		}
	}

	if err := uc.genderPolicy.ValidateAssignment(req.Bed.CabinID, active, booking.Gender, now); err != nil {
		if errors.Is(err, gendercohort.ErrGenderConflict) {
			uc.logger.Warn("PromoteWaitlist: gender conflict in cabin=%d: %v", req.Bed.CabinID, err)
			return nil, fmt.Errorf("%w: %v", ErrGenderConflict, err)
		}
		return nil, fmt.Errorf("%w: gender validation failed: %v", ErrInternal, err)
	}

	if err := uc.ledger.Reserve(ctx, booking.TripID, 1, domain.ReservationConfirmed); err != nil {
		switch {
		case errors.Is(err, capacity.ErrCapacityExceeded):
			uc.logger.Warn("PromoteWaitlist: capacity exceeded on trip=%d", booking.TripID)
			return nil, fmt.Errorf("%w: trip=%d", ErrCapacityExceeded, booking.TripID)
		case errors.Is(err, capacity.ErrTripNotFound):
			return nil, ErrTripNotFound
		default:
			uc.logger.Error("PromoteWaitlist: ledger reserve failed for trip=%d: %v", booking.TripID, err)
			return nil, fmt.Errorf("%w: ledger reserve failed: %w", ErrInternal, err)
		}
	}

	if err := uc.bookingRepo.PromoteWaitlist(ctx, booking.ID, req.Bed.CabinID, req.Bed.BedNumber); err != nil {
		if errors.Is(err, bookingstorage.ErrStatusChanged) || errors.Is(err, bookingstorage.ErrBookingNotFound) {
			uc.logger.Warn("PromoteWaitlist: booking=%d changed concurrently: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentModification, err)
		}
		uc.logger.Error("PromoteWaitlist: failed to promote booking=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to promote booking: %w", ErrInternal, err)
	}

	updated, err := uc.bookingRepo.GetByID(ctx, booking.ID)
	if err != nil {
		uc.logger.Error("PromoteWaitlist: failed to reload booking=%d: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	return updated, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.Bed.CabinID <= 0 {
		return fmt.Errorf("%w: cabinID must be positive", ErrInvalidInput)
	}
	if req.Bed.BedNumber < 1 {
		return fmt.Errorf("%w: bedNumber must be positive", ErrInvalidInput)
	}
	if domain.IsWaitlistBedNumber(req.Bed.BedNumber) {
		return fmt.Errorf("%w: bedNumber %d is in the reserved waitlist band", ErrInvalidInput, req.Bed.BedNumber)
	}
	return nil
}
