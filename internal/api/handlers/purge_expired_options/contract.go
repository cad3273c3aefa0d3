package purge_expired_options

import (
	"context"

	purgeExpired "github.com/divetrip/booking-service/internal/usecase/purge_expired_options"
)

// PurgeExpiredOptionsUseCase интерфейс use case очистки просроченных опционов
type PurgeExpiredOptionsUseCase interface {
	Execute(ctx context.Context, req *purgeExpired.Request) (*purgeExpired.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
