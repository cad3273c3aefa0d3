package cancel_bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_bookings: internal error")
)

// Коды исхода отмены для отдельного бронирования
const (
	ReasonNotFound         = "booking not found"
	ReasonAlreadyCancelled = "booking already cancelled"
	ReasonStatusChanged    = "status changed concurrently"
	ReasonInternalError    = "internal error"
)
