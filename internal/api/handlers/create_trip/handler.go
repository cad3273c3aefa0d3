package create_trip

import (
	"errors"
	"net/http"

	"github.com/divetrip/booking-service/internal/api/handlers"
	createTrip "github.com/divetrip/booking-service/internal/usecase/create_trip"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTripData    = "некорректные данные рейса"
	msgBoatNotFound       = "лодка не найдена"
	msgBoatWithoutCabins  = "у лодки нет ни одной каюты"
	msgScheduleConflict   = "диапазон дат конфликтует с существующим рейсом лодки"
)

type Handler struct {
	useCase CreateTripUseCase
	logger  Logger
}

func NewHandler(useCase CreateTripUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/trips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateTripRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /trips - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /trips - Invalid request data: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTripData)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createTrip.ErrInvalidInput):
			h.logger.Warn("POST /trips - Invalid input: boat_id=%d, error=%v", req.BoatID, err)
			handlers.RespondBadRequest(w, msgInvalidTripData)

		case errors.Is(err, createTrip.ErrBoatNotFound):
			h.logger.Warn("POST /trips - Boat not found: boat_id=%d", req.BoatID)
			handlers.RespondNotFound(w, msgBoatNotFound)

		case errors.Is(err, createTrip.ErrBoatWithoutCabins):
			h.logger.Warn("POST /trips - Boat has no cabins: boat_id=%d", req.BoatID)
			handlers.RespondConflict(w, msgBoatWithoutCabins)

		case errors.Is(err, createTrip.ErrScheduleConflict):
			h.logger.Warn("POST /trips - Schedule conflict: boat_id=%d, error=%v", req.BoatID, err)
			handlers.RespondConflict(w, msgScheduleConflict)

		default:
			h.logger.Error("POST /trips - Failed to create trip: boat_id=%d, error=%v", req.BoatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /trips - Trip created: trip_id=%d, boat_id=%d, capacity=%d",
		result.ID, result.BoatID, result.Capacity)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
