package set_single_use

import (
	"context"

	setSingleUse "github.com/divetrip/booking-service/internal/usecase/set_single_use"
)

type SetSingleUseUseCase interface {
	Execute(ctx context.Context, req *setSingleUse.Request) (*setSingleUse.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
