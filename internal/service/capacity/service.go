package capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
	tripRepo "github.com/divetrip/booking-service/internal/infra/storage/trip"
)

// Service единственный источник истины для счетчиков мест рейса
//
// Инвариант: booked_spots + available_spots == capacity, где booked_spots
// учитывает только опционы и подтвержденные бронирования. Лист ожидания
// счетчиков не касается: Reserve/Release для него - no-op
type Service struct {
	tripRepo TripRepository
	logger   Logger
}

// NewService создает новый экземпляр леджера
func NewService(tripRepo TripRepository, logger Logger) *Service {
	return &Service{
		tripRepo: tripRepo,
		logger:   logger,
	}
}

// Reserve резервирует spots мест на рейсе
// Для kind=waitlist счетчики не изменяются
func (s *Service) Reserve(ctx context.Context, tripID int64, spots int, kind domain.ReservationKind) error {
	if kind == domain.ReservationWaitlist {
		return nil
	}

	if spots <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSpots, spots)
	}

	err := s.tripRepo.ReserveSpots(ctx, tripID, spots)
	if err != nil {
		switch {
		case errors.Is(err, tripRepo.ErrNoCapacity):
			s.logger.Warn("Reserve: capacity exceeded for trip=%d, spots=%d, kind=%s", tripID, spots, kind)
			return fmt.Errorf("%w: trip=%d spots=%d", ErrCapacityExceeded, tripID, spots)
		case errors.Is(err, tripRepo.ErrTripNotFound):
			s.logger.Warn("Reserve: trip=%d not found", tripID)
			return ErrTripNotFound
		default:
			s.logger.Error("Reserve: repository error for trip=%d: %v", tripID, err)
			return fmt.Errorf("%w: Reserve - repository error: %w", ErrInternal, err)
		}
	}

	s.logger.Info("Reserve: reserved %d spots on trip=%d, kind=%s", spots, tripID, kind)
	return nil
}

// Release освобождает spots мест на рейсе (обратная операция к Reserve)
// Для kind=waitlist счетчики не изменяются
func (s *Service) Release(ctx context.Context, tripID int64, spots int, kind domain.ReservationKind) error {
	if kind == domain.ReservationWaitlist {
		return nil
	}

	if spots <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSpots, spots)
	}

	err := s.tripRepo.ReleaseSpots(ctx, tripID, spots)
	if err != nil {
		switch {
		case errors.Is(err, tripRepo.ErrNoBookedSpots):
			s.logger.Error("Release: ledger invariant violated for trip=%d, spots=%d", tripID, spots)
			return fmt.Errorf("%w: trip=%d spots=%d", ErrLedgerInvariant, tripID, spots)
		case errors.Is(err, tripRepo.ErrTripNotFound):
			s.logger.Warn("Release: trip=%d not found", tripID)
			return ErrTripNotFound
		default:
			s.logger.Error("Release: repository error for trip=%d: %v", tripID, err)
			return fmt.Errorf("%w: Release - repository error: %w", ErrInternal, err)
		}
	}

	s.logger.Info("Release: released %d spots on trip=%d, kind=%s", spots, tripID, kind)
	return nil
}
