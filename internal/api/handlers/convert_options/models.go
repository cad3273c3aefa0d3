package convert_options

import (
	convertOptions "github.com/divetrip/booking-service/internal/usecase/convert_options"
)

// ConvertOptionsRequest HTTP request model
type ConvertOptionsRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
}

// ConvertResult HTTP модель исхода конвертации одного бронирования
type ConvertResult struct {
	BookingID int64  `json:"bookingId"`
	Converted bool   `json:"converted"`
	Reason    string `json:"reason,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ConvertOptionsResponse HTTP response model
type ConvertOptionsResponse struct {
	Results []ConvertResult `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *convertOptions.Response) *ConvertOptionsResponse {
	out := &ConvertOptionsResponse{Results: make([]ConvertResult, 0, len(resp.Results))}

	for _, r := range resp.Results {
		result := ConvertResult{
			BookingID: r.BookingID,
			Converted: r.Converted,
			Reason:    r.Reason,
		}
		if r.Booking != nil {
			result.Status = r.Booking.Status
		}
		out.Results = append(out.Results, result)
	}

	return out
}
