package create_waitlist

import (
	"context"

	createWaitlist "github.com/divetrip/booking-service/internal/usecase/create_waitlist"
)

type CreateWaitlistUseCase interface {
	Execute(ctx context.Context, req *createWaitlist.Request) (*createWaitlist.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
