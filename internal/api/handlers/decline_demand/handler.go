package decline_demand

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/demand"
)

const (
	msgNotFound        = "no requests for this date and time"
	msgAlreadyResolved = "trip has already been confirmed"
)

type Handler struct {
	service DemandService
	logger  Logger
}

func NewHandler(service DemandService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/queenstown/decline
// Требует X-Admin-Pin. Пассажиры не уведомляются.
// Подтвержденный ключ не отклоняется: 409 Conflict.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/queenstown/decline - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.service.Decline(r.Context(), req.Date, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, demand.ErrDemandNotFound):
			h.logger.Warn("POST /api/queenstown/decline - Not found: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, demand.ErrAlreadyResolved):
			h.logger.Warn("POST /api/queenstown/decline - Conflict: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondConflict(w, msgAlreadyResolved)

		default:
			h.logger.Error("POST /api/queenstown/decline - Failed: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/queenstown/decline - Declined: date=%s, time=%s, changed=%t",
		req.Date, req.Time, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, ResolveResponse{
		OK:     true,
		Status: result.Aggregate.Status,
		Count:  result.Aggregate.Count,
	})
}
