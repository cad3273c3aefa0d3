package create_confirmed

import (
	"context"

	createConfirmed "github.com/divetrip/booking-service/internal/usecase/create_confirmed"
)

type CreateConfirmedUseCase interface {
	Execute(ctx context.Context, req *createConfirmed.Request) (*createConfirmed.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
