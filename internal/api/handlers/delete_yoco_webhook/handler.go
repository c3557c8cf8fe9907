package delete_yoco_webhook

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
)

const (
	msgMissingID     = "Missing webhook id"
	msgNotConfigured = "Missing YOCO_SECRET_KEY env"
)

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

// Handle POST /api/yoco/delete-webhook
// Требует X-Admin-Pin. Ответ Yoco не 2xx возвращается с тем же статусом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req DeleteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/yoco/delete-webhook - Unreadable body, treating as empty: %v", err)
	}

	id := strings.TrimSpace(req.ID)
	if id == "" {
		h.logger.Warn("POST /api/yoco/delete-webhook - Missing id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	if !h.gateway.Configured() {
		h.logger.Warn("POST /api/yoco/delete-webhook - Yoco is not configured")
		handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	data, err := h.gateway.DeleteWebhook(r.Context(), id)
	if err != nil {
		var upstream *yoco.UpstreamError
		if errors.As(err, &upstream) {
			h.logger.Warn("POST /api/yoco/delete-webhook - Rejected by Yoco: id=%s, status=%d", id, upstream.StatusCode)
			handlers.RespondJSON(w, upstream.StatusCode, handlers.UpstreamErrorResponse{OK: false, Error: upstream.Body})
			return
		}
		h.logger.Error("POST /api/yoco/delete-webhook - Failed: id=%s, error=%v", id, err)
		handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("POST /api/yoco/delete-webhook - Deleted: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, handlers.DataResponse{OK: true, Data: data})
}
