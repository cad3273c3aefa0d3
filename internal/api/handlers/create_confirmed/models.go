package create_confirmed

import (
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	createConfirmed "github.com/divetrip/booking-service/internal/usecase/create_confirmed"
)

// BedSelection HTTP модель выбранного места
type BedSelection struct {
	CabinID   int64 `json:"cabinId"`
	BedNumber int   `json:"bedNumber"`
}

// CreateConfirmedRequest HTTP request model
type CreateConfirmedRequest struct {
	Beds      []BedSelection `json:"beds"`
	Gender    string         `json:"gender"`
	GroupName string         `json:"groupName,omitempty"`
}

// BookingResponse HTTP модель созданного бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	TripID        int64   `json:"tripId"`
	CabinID       int64   `json:"cabinId"`
	BedNumber     int     `json:"bedNumber"`
	Status        string  `json:"status"`
	Gender        string  `json:"gender"`
	GroupName     string  `json:"groupName"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	CancelDate    *string `json:"cancelDate,omitempty"`
	OwnerID       int64   `json:"ownerId"`
	CreatedAt     string  `json:"createdAt"`
}

// CreateConfirmedResponse HTTP response model
type CreateConfirmedResponse struct {
	TripID   int64             `json:"tripId"`
	Bookings []BookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateConfirmedRequest) ToUseCaseRequest(tripID, ownerID int64) *createConfirmed.Request {
	beds := make([]domain.BedSelection, 0, len(r.Beds))
	for _, b := range r.Beds {
		beds = append(beds, domain.BedSelection{CabinID: b.CabinID, BedNumber: b.BedNumber})
	}

	return &createConfirmed.Request{
		TripID:    tripID,
		OwnerID:   ownerID,
		Beds:      beds,
		Gender:    domain.Gender(r.Gender),
		GroupName: r.GroupName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createConfirmed.Response) *CreateConfirmedResponse {
	out := &CreateConfirmedResponse{
		TripID:   resp.TripID,
		Bookings: make([]BookingResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		var cancelDate *string
		if b.CancelDate != nil {
			s := b.CancelDate.Format(domain.DateFormat)
			cancelDate = &s
		}
		out.Bookings = append(out.Bookings, BookingResponse{
			ID:            b.ID,
			TripID:        b.TripID,
			CabinID:       b.CabinID,
			BedNumber:     b.BedNumber,
			Status:        b.Status,
			Gender:        b.Gender,
			GroupName:     b.GroupName,
			Price:         b.Price,
			OriginalPrice: b.OriginalPrice,
			CancelDate:    cancelDate,
			OwnerID:       b.OwnerID,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		})
	}

	return out
}
