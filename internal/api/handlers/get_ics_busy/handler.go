package get_ics_busy

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

const (
	msgNotConfigured = "Missing ICS_URL env"
	msgFetchFailed   = "Failed to fetch ICS feed"
)

type Handler struct {
	calendar ICSCalendar
	logger   Logger
}

func NewHandler(calendar ICSCalendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/calendar/ics
// Query params: start, end (YYYY-MM-DD, end по умолчанию равен start)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.calendar.Configured() {
		h.logger.Warn("GET /api/calendar/ics - ICS URL is not configured")
		handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	start := domain.TrimDate(r.URL.Query().Get("start"))
	end := domain.TrimDate(r.URL.Query().Get("end"))
	if end == "" {
		end = start
	}

	times, events, err := h.calendar.BusyTimes(r.Context(), start, end)
	if err != nil {
		h.logger.Error("GET /api/calendar/ics - Failed: start=%s, end=%s, error=%v", start, end, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BusyResponse{Events: events, BlockedTimes: times})
}
