package register_yoco_webhook

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
)

const (
	msgInvalidURL    = "Invalid webhook URL"
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

// Handle POST /api/yoco/register-webhook
// Требует X-Admin-Pin. Ответ Yoco не 2xx возвращается с тем же статусом.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/yoco/register-webhook - Unreadable body, treating as empty: %v", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultWebhookName
	}
	webhookURL := strings.TrimSpace(req.URL)

	lower := strings.ToLower(webhookURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		h.logger.Warn("POST /api/yoco/register-webhook - Invalid URL: url=%q", webhookURL)
		handlers.RespondBadRequest(w, msgInvalidURL)
		return
	}

	if !h.gateway.Configured() {
		h.logger.Warn("POST /api/yoco/register-webhook - Yoco is not configured")
		handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)
		return
	}

	data, err := h.gateway.RegisterWebhook(r.Context(), name, webhookURL)
	if err != nil {
		var upstream *yoco.UpstreamError
		if errors.As(err, &upstream) {
			h.logger.Warn("POST /api/yoco/register-webhook - Rejected by Yoco: status=%d", upstream.StatusCode)
			handlers.RespondJSON(w, upstream.StatusCode, handlers.UpstreamErrorResponse{OK: false, Error: upstream.Body})
			return
		}
		h.logger.Error("POST /api/yoco/register-webhook - Failed: %v", err)
		handlers.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.logger.Info("POST /api/yoco/register-webhook - Registered: name=%s, url=%s", name, webhookURL)
	handlers.RespondJSON(w, http.StatusOK, handlers.DataResponse{OK: true, Data: data})
}
