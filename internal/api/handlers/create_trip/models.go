package create_trip

import (
	"fmt"
	"time"

	"github.com/divetrip/booking-service/internal/domain"
	createTrip "github.com/divetrip/booking-service/internal/usecase/create_trip"
)

// CreateTripRequest HTTP request model
type CreateTripRequest struct {
	BoatID       int64   `json:"boatId"`
	Name         string  `json:"name"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	PricePerSpot float64 `json:"pricePerSpot"`
}

// CreateTripResponse HTTP response model
type CreateTripResponse struct {
	ID             int64   `json:"id"`
	BoatID         int64   `json:"boatId"`
	Name           string  `json:"name"`
	StartDate      string  `json:"startDate"`
	EndDate        string  `json:"endDate"`
	Capacity       int     `json:"capacity"`
	BookedSpots    int     `json:"bookedSpots"`
	AvailableSpots int     `json:"availableSpots"`
	PricePerSpot   float64 `json:"pricePerSpot"`
	CreatedAt      string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP модель в модель use case
func (r *CreateTripRequest) ToUseCaseRequest() (*createTrip.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid startDate: %v", err)
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid endDate: %v", err)
	}

	return &createTrip.Request{
		BoatID:       r.BoatID,
		Name:         r.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		PricePerSpot: r.PricePerSpot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createTrip.Response) *CreateTripResponse {
	return &CreateTripResponse{
		ID:             resp.ID,
		BoatID:         resp.BoatID,
		Name:           resp.Name,
		StartDate:      resp.StartDate.Format(domain.DateFormat),
		EndDate:        resp.EndDate.Format(domain.DateFormat),
		Capacity:       resp.Capacity,
		BookedSpots:    resp.BookedSpots,
		AvailableSpots: resp.AvailableSpots,
		PricePerSpot:   resp.PricePerSpot,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
