package get_pricing_quote

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

const msgInvalidPassengers = "passengers must be a positive integer"

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/pricing/quote?route=...&passengers=N
// Неизвестный маршрут считается по базовому тарифу
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := domain.RouteID(r.URL.Query().Get("route"))

	passengers, err := strconv.Atoi(r.URL.Query().Get("passengers"))
	if err != nil || passengers < 1 {
		h.logger.Warn("GET /api/pricing/quote - Invalid passengers: %q", r.URL.Query().Get("passengers"))
		handlers.RespondBadRequest(w, msgInvalidPassengers)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainQuote(domain.CalculateQuote(route, passengers)))
}
