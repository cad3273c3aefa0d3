package create_trip

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_trip: invalid input data")

	// ErrBoatNotFound возвращается, когда лодка не найдена
	ErrBoatNotFound = errors.New("create_trip: boat not found")

	// ErrBoatWithoutCabins возвращается, когда у лодки нет ни одной каюты
	ErrBoatWithoutCabins = errors.New("create_trip: boat has no cabins")

	// ErrScheduleConflict возвращается, когда диапазон рейса конфликтует
	// с существующим рейсом лодки (с учетом буферных дней)
	ErrScheduleConflict = errors.New("create_trip: schedule conflict with existing trip")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_trip: internal error")
)
