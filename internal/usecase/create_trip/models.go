package create_trip

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
)

// Request модель запроса на создание рейса
type Request struct {
	BoatID       int64     // ID лодки
	Name         string    // Название рейса
	StartDate    time.Time // Дата начала (включительно)
	EndDate      time.Time // Дата окончания (включительно)
	PricePerSpot float64   // Цена за место
}

// Response модель ответа с созданным рейсом
type Response struct {
	ID             int64
	BoatID         int64
	Name           string
	StartDate      time.Time
	EndDate        time.Time
	Capacity       int
	BookedSpots    int
	AvailableSpots int
	PricePerSpot   float64
	CreatedAt      time.Time
}

// fromDomain конвертирует доменную модель в модель ответа
func fromDomain(t *domain.Trip) *Response {
	return &Response{
		ID:             t.ID,
		BoatID:         t.BoatID,
		Name:           t.Name,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		Capacity:       t.Capacity,
		BookedSpots:    t.BookedSpots,
		AvailableSpots: t.AvailableSpots,
		PricePerSpot:   t.PricePerSpot,
		CreatedAt:      t.CreatedAt,
	}
}
