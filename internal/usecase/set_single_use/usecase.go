package set_single_use

import (
	"context"
	"errors"
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
	bookingstorage "github.com/divetrip/booking-service/internal/infra/storage/booking"
)

// UseCase use case установки и снятия одноместного размещения
type UseCase struct {
	bookingRepo BookingRepository
	repricer    Repricer
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	repricer Repricer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		repricer:    repricer,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case установки одноместного размещения
//
// Наценка считается от исходной цены, поэтому повторный вызов с тем же
// флагом не меняет результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetSingleUse: booking=%d, singleUse=%t", req.BookingID, req.SingleUse)

	if req.BookingID <= 0 {
		uc.logger.Warn("SetSingleUse: invalid bookingID=%d", req.BookingID)
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrBookingNotFound) {
				uc.logger.Warn("SetSingleUse: booking=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("SetSingleUse: failed to get booking=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if booking.Status == domain.StatusCancelled {
			uc.logger.Warn("SetSingleUse: booking=%d is cancelled", req.BookingID)
			return ErrBookingCancelled
		}

		if booking.Status == domain.StatusWaitlist {
			uc.logger.Warn("SetSingleUse: booking=%d is a waitlist entry", req.BookingID)
			return ErrWaitlistBooking
		}

		var repriced domain.Booking
		if req.SingleUse {
			repriced = uc.repricer.ApplySingleUse(*booking)
		} else {
			repriced = uc.repricer.RevertSingleUse(*booking)
		}

		if err := uc.bookingRepo.UpdatePricing(txCtx, booking.ID, repriced.Price, repriced.SingleUse); err != nil {
			if errors.Is(err, bookingstorage.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("SetSingleUse: failed to update pricing for booking=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update pricing: %w", ErrInternal, err)
		}

		result = &repriced
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SetSingleUse: booking=%d repriced to %.2f (singleUse=%t)",
		result.ID, result.Price, result.SingleUse)
	return fromDomain(result), nil
}
