package remove_calendar_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	removeBlocks "github.com/m04kA/SMC-ShuttleService/internal/usecase/remove_calendar_blocks"
)

const (
	msgNotConfigured = "Graph not configured"
	msgMissingDate   = "Missing date"
	msgUnavailable   = "Failed to read Graph calendar"
)

type Handler struct {
	useCase RemoveBlocksUseCase
	logger  Logger
}

func NewHandler(useCase RemoveBlocksUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/graph/remove-blocks
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RemoveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/graph/remove-blocks - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.useCase.Execute(r.Context(), &removeBlocks.Request{Date: req.Date, UPN: req.UPN})
	if err != nil {
		switch {
		case errors.Is(err, removeBlocks.ErrNotConfigured):
			h.logger.Warn("POST /api/graph/remove-blocks - Graph is not configured: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, removeBlocks.ErrInvalidInput):
			h.logger.Warn("POST /api/graph/remove-blocks - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgMissingDate)

		case errors.Is(err, removeBlocks.ErrCalendarUnavailable):
			h.logger.Error("POST /api/graph/remove-blocks - Calendar unavailable: date=%s, error=%v", req.Date, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUnavailable)

		default:
			h.logger.Error("POST /api/graph/remove-blocks - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/graph/remove-blocks - Removed: date=%s, removed=%d", result.Date, result.Removed)
	handlers.RespondJSON(w, http.StatusOK, RemoveResponse{OK: true, Removed: result.Removed})
}
