package capacity

import "context"

// TripRepository интерфейс репозитория рейсов
// Реализация обязана выполнять Reserve/Release одним условным UPDATE
type TripRepository interface {
	ReserveSpots(ctx context.Context, tripID int64, spots int) error
	ReleaseSpots(ctx context.Context, tripID int64, spots int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
