package purge_expired_options

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/divetrip/booking-service/internal/api/handlers"
	purgeExpired "github.com/divetrip/booking-service/internal/usecase/purge_expired_options"
)

const (
	msgInvalidTripID = "некорректный ID рейса"
	msgTripNotFound  = "рейс не найден"
)

// PurgeExpiredOptionsResponse HTTP response model
type PurgeExpiredOptionsResponse struct {
	TripID        int64   `json:"tripId"`
	PurgedIDs     []int64 `json:"purgedIds"`
	ReleasedSpots int     `json:"releasedSpots"`
}

type Handler struct {
	useCase PurgeExpiredOptionsUseCase
	logger  Logger
}

func NewHandler(useCase PurgeExpiredOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips/{tripId}/purge-expired
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tripID, err := strconv.ParseInt(vars["tripId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /trips/{id}/purge-expired - Invalid trip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &purgeExpired.Request{TripID: tripID})
	if err != nil {
		switch {
		case errors.Is(err, purgeExpired.ErrInvalidInput):
			h.logger.Warn("POST /trips/{id}/purge-expired - Invalid input: trip_id=%d, error=%v", tripID, err)
			handlers.RespondBadRequest(w, msgInvalidTripID)

		case errors.Is(err, purgeExpired.ErrTripNotFound):
			h.logger.Warn("POST /trips/{id}/purge-expired - Trip not found: trip_id=%d", tripID)
			handlers.RespondNotFound(w, msgTripNotFound)

		default:
			h.logger.Error("POST /trips/{id}/purge-expired - Failed to purge: trip_id=%d, error=%v", tripID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips/{id}/purge-expired - Purged expired options: trip_id=%d, purged=%d, released=%d",
		tripID, len(result.PurgedIDs), result.ReleasedSpots)
	handlers.RespondJSON(w, http.StatusOK, &PurgeExpiredOptionsResponse{
		TripID:        result.TripID,
		PurgedIDs:     result.PurgedIDs,
		ReleasedSpots: result.ReleasedSpots,
	})
}
