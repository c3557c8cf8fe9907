package get_graph_busy

import "github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"

type BusyResponse struct {
	Events       []graph.Event `json:"events"`
	BlockedTimes []string      `json:"blockedTimes"`
}
