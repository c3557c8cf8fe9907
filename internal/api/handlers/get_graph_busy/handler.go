package get_graph_busy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
)

const (
	msgNotConfigured = "Missing Graph env vars"
	msgMissingParams = "Missing start or upn"
	msgFetchFailed   = "Failed to fetch Graph calendar"
)

type Handler struct {
	calendar GraphCalendar
	logger   Logger
}

func NewHandler(calendar GraphCalendar, logger Logger) *Handler {
	return &Handler{
		calendar: calendar,
		logger:   logger,
	}
}

// Handle GET /api/graph/availability
// Query params: start (required), end (по умолчанию start), upn (по умолчанию ящик из конфигурации)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.calendar.Configured() {
		h.logger.Warn("GET /api/graph/availability - Graph is not configured")
		handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	start := domain.TrimDate(r.URL.Query().Get("start"))
	end := domain.TrimDate(r.URL.Query().Get("end"))
	upn := r.URL.Query().Get("upn")
	if start == "" {
		h.logger.Warn("GET /api/graph/availability - Missing start")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}
	if end == "" {
		end = start
	}

	times, events, err := h.calendar.BusyTimes(r.Context(), upn, start, end)
	if err != nil {
		if errors.Is(err, graph.ErrNotConfigured) {
			h.logger.Warn("GET /api/graph/availability - No mailbox: %v", err)
			handlers.RespondBadRequest(w, msgMissingParams)
			return
		}
		h.logger.Error("GET /api/graph/availability - Failed: start=%s, end=%s, error=%v", start, end, err)
		handlers.RespondError(w, http.StatusInternalServerError, msgFetchFailed)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, BusyResponse{Events: events, BlockedTimes: times})
}
