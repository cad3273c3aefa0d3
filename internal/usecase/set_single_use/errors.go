package set_single_use

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("set_single_use: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("set_single_use: booking not found")

	// ErrBookingCancelled возвращается при попытке пересчета цены
	// отмененного бронирования
	ErrBookingCancelled = errors.New("set_single_use: booking is cancelled")

	// ErrWaitlistBooking возвращается при попытке пересчета цены записи
	// листа ожидания: наценка применима только к реальному месту в каюте
	ErrWaitlistBooking = errors.New("set_single_use: booking is a waitlist entry")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_single_use: internal error")
)
