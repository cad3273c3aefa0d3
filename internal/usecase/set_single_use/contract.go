package set_single_use

import (
	"context"

	"github.com/divetrip/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdatePricing(ctx context.Context, id int64, price float64, singleUse bool) error
}

// Repricer интерфейс пересчета цены при одноместном размещении
type Repricer interface {
	ApplySingleUse(b domain.Booking) domain.Booking
	RevertSingleUse(b domain.Booking) domain.Booking
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
