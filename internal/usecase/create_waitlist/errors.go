package create_waitlist

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_waitlist: invalid input data")

	// ErrUserNotFound возвращается, когда владелец бронирования не найден
	ErrUserNotFound = errors.New("create_waitlist: user not found")

	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("create_waitlist: trip not found")

	// ErrTripDeparted возвращается при попытке бронирования на ушедший рейс
	ErrTripDeparted = errors.New("create_waitlist: trip has already departed")

	// ErrWaitlistLimitExceeded возвращается, когда запрошено больше мест
	// листа ожидания, чем на рейсе есть активных опционов
	ErrWaitlistLimitExceeded = errors.New("create_waitlist: waitlist limit exceeded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_waitlist: internal error")
)
