package get_owner_bookings

import (
	"context"

	"github.com/divetrip/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса чтения бронирований
type BookingService interface {
	GetOwnerBookings(ctx context.Context, req *models.GetOwnerBookingsRequest) (*models.BookingListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
