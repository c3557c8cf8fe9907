package push_calendar_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	pushBlocks "github.com/m04kA/SMC-ShuttleService/internal/usecase/push_calendar_blocks"
)

const (
	msgNotConfigured = "Graph not configured"
	msgMissingDate   = "Missing date"
)

type Handler struct {
	useCase PushBlocksUseCase
	logger  Logger
}

func NewHandler(useCase PushBlocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/graph/push-blocks
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PushRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/graph/push-blocks - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.useCase.Execute(r.Context(), &pushBlocks.Request{Date: req.Date, UPN: req.UPN})
	if err != nil {
		switch {
		case errors.Is(err, pushBlocks.ErrNotConfigured):
			h.logger.Warn("POST /api/graph/push-blocks - Graph is not configured: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, pushBlocks.ErrInvalidInput):
			h.logger.Warn("POST /api/graph/push-blocks - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgMissingDate)

		default:
			h.logger.Error("POST /api/graph/push-blocks - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	created := make([]CreatedEvent, 0, len(result.Created))
	for _, ev := range result.Created {
		created = append(created, CreatedEvent{ID: ev.ID, Time: ev.Time})
	}

	h.logger.Info("POST /api/graph/push-blocks - Pushed: date=%s, created=%d, failed=%d",
		result.Date, len(created), result.Failed)
	handlers.RespondJSON(w, http.StatusOK, PushResponse{OK: true, Created: created, Failed: result.Failed})
}
