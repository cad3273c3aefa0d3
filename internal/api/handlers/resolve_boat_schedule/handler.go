package resolve_boat_schedule

import (
	"errors"
	"net/http"

	"github.com/divetrip/booking-service/internal/api/handlers"
	resolveSchedule "github.com/divetrip/booking-service/internal/usecase/resolve_boat_schedule"
)

const (
	msgInvalidQuery = "некорректные параметры запроса"
)

type Handler struct {
	useCase ResolveBoatScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ResolveBoatScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/boats/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /boats/schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resolveSchedule.ErrInvalidInput):
			h.logger.Warn("GET /boats/schedule - Invalid input: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /boats/schedule - Failed to resolve schedule: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /boats/schedule - Schedule resolved: available=%d, unavailable=%d",
		len(result.Available), len(result.Unavailable))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
