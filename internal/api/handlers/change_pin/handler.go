package change_pin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/admin"
)

const (
	msgInvalidPin   = "PIN must be 4 to 32 characters"
	msgUnauthorized = "Invalid PIN"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/admin/change-pin
// Текущий PIN передается в теле, заголовок X-Admin-Pin не нужен
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ChangePinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/admin/change-pin - Unreadable body, treating as empty: %v", err)
	}

	if err := h.service.ChangePin(req.Current, req.Next); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidPin):
			h.logger.Warn("POST /api/admin/change-pin - Invalid new PIN length")
			handlers.RespondBadRequest(w, msgInvalidPin)

		case errors.Is(err, admin.ErrUnauthorized):
			h.logger.Warn("POST /api/admin/change-pin - Current PIN mismatch")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /api/admin/change-pin - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/admin/change-pin - PIN updated")
	handlers.RespondOK(w)
}
