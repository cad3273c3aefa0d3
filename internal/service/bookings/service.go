package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/divetrip/booking-service/internal/domain"
	bookingRepo "github.com/divetrip/booking-service/internal/infra/storage/booking"
	tripRepo "github.com/divetrip/booking-service/internal/infra/storage/trip"
	"github.com/divetrip/booking-service/internal/service/bookings/models"
)

// Service сервис чтения бронирований
// Просроченные опционы (cancel_date в прошлом) по умолчанию скрываются
// на этапе чтения: фоновой задачи, переводящей их в отмененные, нет
type Service struct {
	bookingRepo  BookingRepository
	tripRepo     TripRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, tripRepo TripRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		tripRepo:     tripRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetTripBookings получает активные бронирования рейса вместе со счетчиками
// Просроченные опционы исключаются из списка, если не запрошено обратное;
// счетчики мест при этом НЕ корректируются - просроченный опцион продолжает
// удерживать место до отмены или зачистки
func (s *Service) GetTripBookings(ctx context.Context, req *models.GetTripBookingsRequest) (*models.TripBookingsResponse, error) {
	s.logger.Info("GetTripBookings: fetching bookings for trip=%d, includeExpired=%v", req.TripID, req.IncludeExpired)

	trip, err := s.tripRepo.GetByID(ctx, req.TripID)
	if err != nil {
		if errors.Is(err, tripRepo.ErrTripNotFound) {
			s.logger.Warn("GetTripBookings: trip=%d not found", req.TripID)
			return nil, ErrTripNotFound
		}
		s.logger.Error("GetTripBookings: failed to get trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: GetTripBookings - repository error: %v", ErrInternal, err)
	}

	active, err := s.bookingRepo.ListActiveByTrip(ctx, req.TripID)
	if err != nil {
		s.logger.Error("GetTripBookings: repository error for trip=%d: %v", req.TripID, err)
		return nil, fmt.Errorf("%w: GetTripBookings - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	visible := active
	if !req.IncludeExpired {
		visible = make([]*domain.Booking, 0, len(active))
		for _, b := range active {
			if b.IsExpiredOption(now) {
				continue
			}
			visible = append(visible, b)
		}
	}

	s.logger.Info("GetTripBookings: trip=%d, %d active bookings (%d visible)",
		req.TripID, len(active), len(visible))

	return &models.TripBookingsResponse{
		TripID:         trip.ID,
		Capacity:       trip.Capacity,
		BookedSpots:    trip.BookedSpots,
		AvailableSpots: trip.AvailableSpots,
		Bookings:       models.FromDomainBookingList(visible),
	}, nil
}

// GetOwnerBookings получает бронирования пользователя, опционально по статусу
func (s *Service) GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetOwnerBookings: fetching bookings for owner=%d, status=%v", req.OwnerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetOwnerBookings: invalid status=%s for owner=%d", *req.Status, req.OwnerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.ListByOwner(ctx, req.OwnerID, domainStatus)
	if err != nil {
		s.logger.Error("GetOwnerBookings: repository error for owner=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerBookings: fetched %d bookings for owner=%d", len(bookings), req.OwnerID)
	return &models.BookingListResponse{Bookings: models.FromDomainBookingList(bookings)}, nil
}
