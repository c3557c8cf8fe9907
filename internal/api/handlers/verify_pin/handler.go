package verify_pin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/admin"
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

// Handle POST /api/admin/verify
// Ответ {ok:true} или 401 {ok:false}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/admin/verify - Unreadable body, treating as empty: %v", err)
	}

	if err := h.service.Verify(req.Pin); err != nil {
		if errors.Is(err, admin.ErrUnauthorized) {
			h.logger.Warn("POST /api/admin/verify - Invalid PIN")
			handlers.RespondJSON(w, http.StatusUnauthorized, handlers.OKResponse{OK: false})
			return
		}
		h.logger.Error("POST /api/admin/verify - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondOK(w)
}
