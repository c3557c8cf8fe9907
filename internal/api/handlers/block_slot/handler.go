package block_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/availability"
)

const msgSlotRequired = "date, route and time are required"

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

// Handle POST /api/calendar/block-slot
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/calendar/block-slot - Unreadable body, treating as empty: %v", err)
	}

	if err := h.service.BlockSlot(r.Context(), req.ToServiceRequest()); err != nil {
		if errors.Is(err, availability.ErrInvalidInput) {
			h.logger.Warn("POST /api/calendar/block-slot - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgSlotRequired)
			return
		}
		h.logger.Error("POST /api/calendar/block-slot - Failed: date=%s, route=%s, time=%s, error=%v",
			req.Date, req.Route, req.Time, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/calendar/block-slot - Slot blocked: date=%s, route=%s, time=%s", req.Date, req.Route, req.Time)
	handlers.RespondOK(w)
}
