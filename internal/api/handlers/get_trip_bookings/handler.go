package get_trip_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	"github.com/divetrip/booking-service/internal/service/bookings"
	"github.com/divetrip/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidTripID = "некорректный ID рейса"
	msgTripNotFound  = "рейс не найден"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trips/{tripId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /trips/{id}/bookings - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	includeExpired := false
	if raw := r.URL.Query().Get("includeExpired"); raw != "" {
		includeExpired, err = strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /trips/{id}/bookings - Invalid includeExpired: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTripID)
			return
		}
	}

	result, err := h.service.GetTripBookings(r.Context(), &models.GetTripBookingsRequest{
		TripID:         tripID,
		IncludeExpired: includeExpired,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrTripNotFound):
			h.logger.Warn("GET /trips/{id}/bookings - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /trips/{id}/bookings - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidTripID)

		default:
			h.logger.Error("GET /trips/{id}/bookings - Failed to get bookings: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /trips/{id}/bookings - Bookings retrieved: trip_id=%d, count=%d",
		tripID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
