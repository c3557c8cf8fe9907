package get_demand_stats

import (
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
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

// Handle GET /api/queenstown/stats?date=YYYY-MM-DD&time=6:00 AM
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := domain.TrimDate(r.URL.Query().Get("date"))
	time := r.URL.Query().Get("time")

	if date == "" || time == "" {
		h.logger.Warn("GET /api/queenstown/stats - Missing date or time")
		handlers.RespondJSON(w, http.StatusBadRequest, StatsResponse{
			Count:     0,
			Threshold: h.service.Threshold(),
			Status:    domain.DemandStatusUnknown,
		})
		return
	}

	stats, err := h.service.Stats(r.Context(), date, time)
	if err != nil {
		h.logger.Error("GET /api/queenstown/stats - Failed: date=%s, time=%s, error=%v", date, time, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatsResponse{
		Count:     stats.Count,
		Threshold: stats.Threshold,
		Status:    stats.Status,
	})
}
