package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-ShuttleService/internal/usecase/get_available_slots"
)

const (
	msgMissingParams = "date and route are required"
	msgUnknownRoute  = "unknown route"
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD not in the past"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
// Query params: date (required, YYYY-MM-DD), route (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	route := r.URL.Query().Get("route")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		Date:  date,
		Route: domain.RouteID(route),
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /api/availability - Missing params: date=%s, route=%s", date, route)
			handlers.RespondBadRequest(w, msgMissingParams)

		case errors.Is(err, getAvailableSlots.ErrUnknownRoute):
			h.logger.Warn("GET /api/availability - Unknown route: route=%s", route)
			handlers.RespondBadRequest(w, msgUnknownRoute)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /api/availability - Invalid date: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /api/availability - Failed to get slots: date=%s, route=%s, error=%v", date, route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /api/availability - Slots retrieved: date=%s, route=%s, slots_count=%d",
		date, route, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
