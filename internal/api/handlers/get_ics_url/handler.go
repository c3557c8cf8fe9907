package get_ics_url

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

type URLResponse struct {
	ICSURL string `json:"icsUrl"`
}

type Handler struct {
	source ICSSource
}

func NewHandler(source ICSSource) *Handler {
	return &Handler{source: source}
}

// Handle GET /api/admin/get-ics-url
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, URLResponse{ICSURL: h.source.URL()})
}
