package models

import (
	"errors"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetTripBookingsRequest запрос на получение бронирований рейса
type GetTripBookingsRequest struct {
	TripID int64 `json:"tripId"`
	// IncludeExpired включить просроченные опционы (по умолчанию они скрыты)
	IncludeExpired bool `json:"includeExpired,omitempty"`
}

// GetOwnerBookingsRequest запрос на получение бронирований пользователя
type GetOwnerBookingsRequest struct {
	OwnerID int64   `json:"ownerId"`
	Status  *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	CabinID       *int64  `json:"cabinId,omitempty"`
	BedNumber     int     `json:"bedNumber"`
	Status        string  `json:"status"`
	Gender        string  `json:"gender,omitempty"`
	GroupName     string  `json:"groupName"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	SingleUse     bool    `json:"singleUse"`
	CancelDate    *string `json:"cancelDate,omitempty"` // "2025-10-15"
	OwnerID       int64   `json:"ownerId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TripBookingsResponse ответ со списком бронирований рейса и счетчиками
type TripBookingsResponse struct {
	TripID         int64             `json:"tripId"`
	Capacity       int               `json:"capacity"`
	BookedSpots    int               `json:"bookedSpots"`
	AvailableSpots int               `json:"availableSpots"`
	Bookings       []BookingResponse `json:"bookings"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		TripID:        b.TripID,
		CabinID:       b.CabinID,
		BedNumber:     b.BedNumber,
		Status:        string(b.Status),
		Gender:        string(b.Gender),
		GroupName:     b.GroupName,
		Price:         b.Price,
		OriginalPrice: b.OriginalPrice,
		SingleUse:     b.SingleUse,
		OwnerID:       b.OwnerID,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.CancelDate != nil {
		cancelStr := b.CancelDate.Format(domain.DateFormat)
		resp.CancelDate = &cancelStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if resp := FromDomainBooking(b); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusOption,
		domain.StatusConfirmed,
		domain.StatusWaitlist,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
