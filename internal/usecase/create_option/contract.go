package create_option

import (
	"context"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/internal/integrations/identityservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	InsertMany(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
	ListActiveByTrip(ctx context.Context, tripID int64) ([]*domain.Booking, error)
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
}

// BoatRepository интерфейс репозитория лодок и кают
type BoatRepository interface {
	GetCabin(ctx context.Context, id int64) (*domain.Cabin, error)
}

// CapacityLedger интерфейс леджера мест рейса
type CapacityLedger interface {
	Reserve(ctx context.Context, tripID int64, spots int, kind domain.ReservationKind) error
}

// GenderPolicy интерфейс политики однополой когорты каюты
type GenderPolicy interface {
	ValidateAssignment(cabinID int64, activeBookings []*domain.Booking, candidate domain.Gender, now time.Time) error
}

// IdentityClient интерфейс клиента IdentityService
type IdentityClient interface {
	GetUser(ctx context.Context, userID int64) (*identityservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
