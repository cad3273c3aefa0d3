package cancel_bookings

import (
	"context"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	"github.com/divetrip/booking-service/internal/service/penalty"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus, clearCancelDate bool) (*domain.Booking, error)
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Trip, error)
}

// CapacityLedger интерфейс леджера мест рейса
type CapacityLedger interface {
	Release(ctx context.Context, tripID int64, spots int, kind domain.ReservationKind) error
}

// PenaltyCalculator интерфейс калькулятора штрафа за отмену
type PenaltyCalculator interface {
	Calculate(tripStartDate, now time.Time, status domain.BookingStatus) penalty.Penalty
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
