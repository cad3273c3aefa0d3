package set_single_use

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на установку одноместного размещения
type Request struct {
	BookingID int64 // ID бронирования
	SingleUse bool  // true - применить наценку, false - вернуть исходную цену
}

// Response модель ответа с пересчитанным бронированием
type Response struct {
	ID            int64
	TripID        int64
	Status        string
	Price         float64
	OriginalPrice float64
	SingleUse     bool
	UpdatedAt     time.Time
}

// fromDomain конвертирует доменную модель в модель ответа
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:            b.ID,
		TripID:        b.TripID,
		Status:        string(b.Status),
		Price:         b.Price,
		OriginalPrice: b.OriginalPrice,
		SingleUse:     b.SingleUse,
		UpdatedAt:     b.UpdatedAt,
	}
}
