package yoco_webhook

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
)

type ReceivedResponse struct {
	Received bool `json:"received"`
}

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/yoco/webhook
// Всегда отвечает {received:true}, чтобы шлюз не повторял доставку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var event models.WebhookEvent
	if err := handlers.DecodeJSON(r, &event); err != nil {
		h.logger.Warn("POST /api/yoco/webhook - Unreadable body: %v", err)
	}

	result, err := h.service.HandleWebhook(r.Context(), &event)
	if err != nil {
		h.logger.Error("POST /api/yoco/webhook - Failed: type=%s, error=%v", event.Type, err)
	} else {
		h.logger.Info("POST /api/yoco/webhook - Processed: type=%s, ref=%s, status=%s, notified=%t",
			event.Type, result.Reference, result.Status, result.Notified)
	}

	handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
}
