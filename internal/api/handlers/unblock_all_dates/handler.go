package unblock_all_dates

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

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

// Handle POST /api/calendar/unblock-all
// Требует X-Admin-Pin. Снимает блокировки дат, блокировки слотов остаются.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if err := h.service.UnblockAllDates(r.Context()); err != nil {
		h.logger.Error("POST /api/calendar/unblock-all - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/calendar/unblock-all - All dates unblocked")
	handlers.RespondOK(w)
}
