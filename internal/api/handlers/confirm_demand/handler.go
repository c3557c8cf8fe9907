package confirm_demand

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	confirmDemand "github.com/m04kA/SMC-ShuttleService/internal/usecase/confirm_demand"
)

const (
	msgNotFound        = "no requests for this date and time"
	msgAlreadyResolved = "trip has already been declined"
)

type Handler struct {
	useCase ConfirmDemandUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmDemandUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/queenstown/confirm
// Требует X-Admin-Pin. Письма пассажирам отправляются после смены статуса.
// Отклоненный ключ не подтверждается: 409 Conflict. Повторное подтверждение письма не отправляет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/queenstown/confirm - Unreadable body, treating as empty: %v", err)
	}

	result, err := h.useCase.Execute(r.Context(), &confirmDemand.Request{Date: req.Date, Time: req.Time})
	if err != nil {
		switch {
		case errors.Is(err, confirmDemand.ErrDemandNotFound):
			h.logger.Warn("POST /api/queenstown/confirm - Not found: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmDemand.ErrAlreadyResolved):
			h.logger.Warn("POST /api/queenstown/confirm - Conflict: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondConflict(w, msgAlreadyResolved)

		default:
			h.logger.Error("POST /api/queenstown/confirm - Failed: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /api/queenstown/confirm - Confirmed: date=%s, time=%s, changed=%t, notified=%d",
		req.Date, req.Time, result.Changed, result.Notified)
	handlers.RespondJSON(w, http.StatusOK, ResolveResponse{
		OK:       true,
		Status:   result.Aggregate.Status,
		Count:    result.Aggregate.Count,
		Notified: result.Notified,
	})
}
