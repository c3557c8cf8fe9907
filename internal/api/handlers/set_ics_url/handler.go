package set_ics_url

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ShuttleService/internal/api/handlers"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
)

const msgInvalidURL = "Invalid ICS URL"

type Handler struct {
	source ICSSource
	logger Logger
}

func NewHandler(source ICSSource, logger Logger) *Handler {
	return &Handler{
		source: source,
		logger: logger,
	}
}

// Handle POST /api/admin/set-ics-url
// Требует X-Admin-Pin. Значение живет до перезапуска процесса.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetURLRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/admin/set-ics-url - Unreadable body, treating as empty: %v", err)
	}

	if err := h.source.SetURL(req.URL); err != nil {
		if errors.Is(err, ics.ErrInvalidURL) {
			h.logger.Warn("POST /api/admin/set-ics-url - Invalid URL: %q", req.URL)
			handlers.RespondBadRequest(w, msgInvalidURL)
			return
		}
		h.logger.Error("POST /api/admin/set-ics-url - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /api/admin/set-ics-url - ICS URL updated")
	handlers.RespondJSON(w, http.StatusOK, SetURLResponse{OK: true, ICSURL: h.source.URL()})
}
