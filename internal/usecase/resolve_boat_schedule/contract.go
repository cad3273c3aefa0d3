package resolve_boat_schedule

import (
	"context"

	"github.com/divetrip/booking-service/internal/domain"
)

// BoatRepository интерфейс репозитория лодок
type BoatRepository interface {
	List(ctx context.Context) ([]*domain.Boat, error)
}

// TripRepository интерфейс репозитория рейсов
type TripRepository interface {
	ListByBoat(ctx context.Context, boatID int64) ([]*domain.Trip, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
