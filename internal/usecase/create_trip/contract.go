package create_trip

import (
	"context"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// BoatRepository интерфейс репозитория лодок и кают
type BoatRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
	ListCabins(ctx context.Context, boatID int64) ([]*domain.Cabin, error)
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	Create(ctx context.Context, t *domain.Trip) (*domain.Trip, error)
	ListByBoat(ctx context.Context, boatID int64) ([]*domain.Trip, error)
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
