package resolve_boat_schedule

import (
	"context"

	resolveSchedule "github.com/divetrip/booking-service/internal/usecase/resolve_boat_schedule"
)

// ResolveBoatScheduleUseCase интерфейс use case подбора свободных лодок
type ResolveBoatScheduleUseCase interface {
	Execute(ctx context.Context, req *resolveSchedule.Request) (*resolveSchedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
