package get_admin_status

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

type StatusResponse struct {
	RequiresPin bool `json:"requiresPin"`
}

type Handler struct {
	service AdminService
}

func NewHandler(service AdminService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/admin/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, StatusResponse{RequiresPin: h.service.RequiresPin()})
}
