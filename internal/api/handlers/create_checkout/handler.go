package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/service/payments"
)

const (
	msgNotConfigured = "Missing YOCO_SECRET_KEY env"
	msgInvalidAmount = "Invalid or missing amount (cents)"
	msgUpstream      = "Failed to create checkout"
)

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

// Handle POST /api/yoco/create-checkout
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/yoco/create-checkout - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.service.CreateCheckout(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrNotConfigured):
			h.logger.Error("POST /api/yoco/create-checkout - Payments not configured")
			handlers.RespondError(w, http.StatusInternalServerError, msgNotConfigured)

		case errors.Is(err, payments.ErrInvalidAmount):
			h.logger.Warn("POST /api/yoco/create-checkout - Invalid amount: %q", req.Amount.String())
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, payments.ErrUpstream):
			h.logger.Error("POST /api/yoco/create-checkout - Gateway error: ref=%s, error=%v", req.ClientReferenceID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgUpstream)

		default:
			h.logger.Error("POST /api/yoco/create-checkout - Failed: ref=%s, error=%v", req.ClientReferenceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/yoco/create-checkout - Checkout created: id=%s, ref=%s", result.ID, req.ClientReferenceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
