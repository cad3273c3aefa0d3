package cancel_bookings

import (
	"errors"
	"net/http"

	"github.com/divetrip/booking-service/internal/api/handlers"
	cancelBookings "github.com/divetrip/booking-service/internal/usecase/cancel_bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный список бронирований"
)

type Handler struct {
	useCase CancelBookingsUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBookings.Request{BookingIDs: req.BookingIDs})
	if err != nil {
		switch {
		case errors.Is(err, cancelBookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/cancel - Failed to cancel bookings: ids=%v, error=%v",
				req.BookingIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/cancel - Bookings processed: count=%d", len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
