package convert_options

import (
	"context"

	convertOptions "github.com/divetrip/booking-service/internal/usecase/convert_options"
)

type ConvertOptionsUseCase interface {
	Execute(ctx context.Context, req *convertOptions.Request) (*convertOptions.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
