package update_route_config

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

type Handler struct {
	service RouteService
	logger  Logger
}

func NewHandler(service RouteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/queenstown/config
// Требует X-Admin-Pin. threshold принимается, но не меняется.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/queenstown/config - Unreadable body, treating as empty: %v", err)
	}

	cfg, err := h.service.Update(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /api/queenstown/config - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/queenstown/config - Updated: enabled=%t", cfg.Enabled)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(cfg))
}
