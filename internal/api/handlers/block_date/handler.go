package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/availability"
)

const msgDateRequired = "date is required"

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/calendar/block-date
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/calendar/block-date - Unreadable body, treating as empty: %v", err)
	}

	if err := h.service.BlockDate(r.Context(), req.Date); err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("POST /api/calendar/block-date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgDateRequired)
			return
		}
		h.logger.Error("POST /api/calendar/block-date - Failed: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/calendar/block-date - Date blocked: date=%s", req.Date)
	handlers.RespondOK(w)
}
