package list_demand

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

type Handler struct {
	service DemandService
	logger  Logger
}

func NewHandler(service DemandService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/queenstown/list
// Query params: date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	list, err := h.service.List(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /api/queenstown/list - Failed: date=%s, error=%v", date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(list))
}
