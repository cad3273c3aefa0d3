package convert_options

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("convert_options: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("convert_options: internal error")
)

// Коды исхода конвертации для отдельного бронирования
const (
	ReasonNotFound      = "booking not found"
	ReasonNotOption     = "booking is not an option"
	ReasonOptionExpired = "option has expired"
	ReasonStatusChanged = "status changed concurrently"
	ReasonInternalError = "internal error"
)
