package list_yoco_webhooks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
)

const msgNotConfigured = "Missing YOCO_SECRET_KEY env"

type Handler struct {
	gateway WebhookGateway
	logger  Logger
}

func NewHandler(gateway WebhookGateway, logger Logger) *Handler {
	return &Handler{
		gateway: gateway,
		logger:  logger,
	}
}

// Handle GET /api/yoco/webhooks
// Требует X-Admin-Pin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if !h.gateway.Configured() {
		h.logger.Warn("GET /api/yoco/webhooks - Yoco is not configured")
		handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	data, err := h.gateway.ListWebhooks(r.Context())
	if err != nil {
		var upstream *yoco.UpstreamError
		if errors.As(err, &upstream) {
			h.logger.Warn("GET /api/yoco/webhooks - Rejected by Yoco: status=%d", upstream.StatusCode)
			handlers.RespondJSON(w, upstream.StatusCode, handlers.UpstreamErrorResponse{OK: false, Error: upstream.Body})
			return
		}
		h.logger.Error("GET /api/yoco/webhooks - Failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.DataResponse{OK: true, Data: data})
}
