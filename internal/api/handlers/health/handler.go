package health

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
)

type HealthResponse struct {
	SecretPresent bool   `json:"secretPresent"`
	SiteURL       string `json:"siteUrl"`
	ICSPresent    bool   `json:"icsPresent"`
	GraphPresent  bool   `json:"graphPresent"`
}

type Handler struct {
	siteURL  string
	payments Integration
	ics      Integration
	graph    Integration
}

func NewHandler(siteURL string, payments, ics, graph Integration) *Handler {
	return &Handler{
		siteURL:  siteURL,
		payments: payments,
		ics:      ics,
		graph:    graph,
	}
}

// Handle GET /api/health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		SecretPresent: h.payments.Configured(),
		SiteURL:       h.siteURL,
		ICSPresent:    h.ics.Configured(),
		GraphPresent:  h.graph.Configured(),
	})
}
