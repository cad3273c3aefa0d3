package get_trip_bookings

import (
	"context"

	"github.com/divetrip/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса чтения бронирований
type BookingService interface {
	GetTripBookings(ctx context.Context, req *models.GetTripBookingsRequest) (*models.TripBookingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
