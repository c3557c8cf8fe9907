package submit_demand

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/demand"
)

const msgMissingFields = "date, time, passengers, name, email and phone are required"

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

// Handle POST /api/queenstown/request
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/queenstown/request - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.service.Submit(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, demand.ErrInvalidInput) {
			h.logger.Warn("POST /api/queenstown/request - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)
			return
		}
		h.logger.Error("POST /api/queenstown/request - Failed to submit: date=%s, time=%s, error=%v",
			req.Date, req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/queenstown/request - Request accepted: date=%s, time=%s, count=%d",
		req.Date, req.Time, result.Count)
	handlers.RespondJSON(w, http.StatusOK, SubmitResponse{
		OK:        true,
		Count:     result.Count,
		Threshold: result.Threshold,
	})
}
