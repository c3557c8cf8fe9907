package get_ics_busy

import "github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"

type BusyResponse struct {
	Events       []ics.Event `json:"events"`
	BlockedTimes []string    `json:"blockedTimes"`
}
