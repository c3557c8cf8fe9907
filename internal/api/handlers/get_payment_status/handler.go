package get_payment_status

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/payments"
)

type UnknownResponse struct {
	Status domain.PaymentStatus `json:"status"`
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

// Handle GET /api/yoco/status?ref=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ref := r.URL.Query().Get("ref")

	result, err := h.service.GetStatus(r.Context(), ref)
	if err != nil {
		if errors.Is(err, payments.ErrReferenceNotFound) {
			h.logger.Warn("GET /api/yoco/status - Unknown reference: ref=%s", ref)
			handlers.RespondJSON(w, http.StatusNotFound, UnknownResponse{Status: domain.PaymentStatusUnknown})
			return
		}
		h.logger.Error("GET /api/yoco/status - Failed: ref=%s, error=%v", ref, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
