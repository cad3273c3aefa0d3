package create_trip

import (
	"context"

	createTrip "github.com/divetrip/booking-service/internal/usecase/create_trip"
)

// CreateTripUseCase интерфейс use case создания рейса
type CreateTripUseCase interface {
	Execute(ctx context.Context, req *createTrip.Request) (*createTrip.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
