package sync_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	syncCalendar "github.com/m04kA/SMC-ShuttleService/internal/usecase/sync_calendar"
)

const (
	msgMissingDate   = "date is required"
	msgUnknownSource = "source must be ics or graph"
	msgUnavailable   = "calendar is not configured or unavailable"
)

type Handler struct {
	useCase SyncCalendarUseCase
	logger  Logger
}

func NewHandler(useCase SyncCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/calendar/sync
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SyncRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/calendar/sync - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.useCase.Execute(r.Context(), &syncCalendar.Request{Date: req.Date, Source: req.Source})
	if err != nil {
		switch {
		case errors.Is(err, syncCalendar.ErrInvalidInput):
			h.logger.Warn("POST /api/calendar/sync - Missing date")
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, syncCalendar.ErrUnknownSource):
			h.logger.Warn("POST /api/calendar/sync - Unknown source: source=%s", req.Source)
			handlers.RespondBadRequest(w, msgUnknownSource)

		case errors.Is(err, syncCalendar.ErrCalendarUnavailable):
			h.logger.Error("POST /api/calendar/sync - Calendar unavailable: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

		default:
			h.logger.Error("POST /api/calendar/sync - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/calendar/sync - Synced: date=%s, source=%s, synced=%d",
		result.Date, result.Source, result.Synced)
	handlers.RespondJSON(w, http.StatusOK, SyncResponse{
		OK:     true,
		Date:   result.Date,
		Source: result.Source,
		Synced: result.Synced,
		Busy:   result.Busy,
	})
}
