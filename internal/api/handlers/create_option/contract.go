package create_option

import (
	"context"

	createOption "github.com/divetrip/booking-service/internal/usecase/create_option"
)

type CreateOptionUseCase interface {
	Execute(ctx context.Context, req *createOption.Request) (*createOption.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
