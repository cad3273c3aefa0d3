package promote_waitlist

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на повышение записи листа ожидания
type Request struct {
	BookingID int64               // ID записи листа ожидания
	Bed       domain.BedSelection // Назначаемое место (каюта + номер места)
}

// Response модель ответа с повышенным бронированием
type Response struct {
	ID        int64
	TripID    int64
	CabinID   int64
	BedNumber int
	Status    string
	Gender    string
	GroupName string
	Price     float64
	OwnerID   int64
	UpdatedAt time.Time
}

// fromDomain конвертирует доменную модель в модель ответа
func fromDomain(b *domain.Booking) *Response {
	var cabinID int64
	if b.CabinID != nil {
		cabinID = *b.CabinID
	}
	return &Response{
		ID:        b.ID,
		TripID:    b.TripID,
		CabinID:   cabinID,
		BedNumber: b.BedNumber,
		Status:    string(b.Status),
		Gender:    string(b.Gender),
		GroupName: b.GroupName,
		Price:     b.Price,
		OwnerID:   b.OwnerID,
		UpdatedAt: b.UpdatedAt,
	}
}
