package purge_expired_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("purge_expired_options: invalid input data")

	// ErrTripNotFound возвращается, когда рейс не найден
	ErrTripNotFound = errors.New("purge_expired_options: trip not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("purge_expired_options: internal error")
)
