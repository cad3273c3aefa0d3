package convert_options

import (
	"errors"
	"net/http"

	"github.com/divetrip/booking-service/internal/api/handlers"
	convertOptions "github.com/divetrip/booking-service/internal/usecase/convert_options"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректный список бронирований"
)

type Handler struct {
	useCase ConvertOptionsUseCase
	logger  Logger
}

func NewHandler(useCase ConvertOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/convert
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConvertOptionsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/convert - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &convertOptions.Request{BookingIDs: req.BookingIDs})
	if err != nil {
		switch {
		case errors.Is(err, convertOptions.ErrInvalidInput):
			h.logger.Warn("POST /bookings/convert - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/convert - Failed to convert options: ids=%v, error=%v",
				req.BookingIDs, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/convert - Options converted: count=%d", len(result.Results))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
