package get_demand_stats

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// StatsResponse счетчик и статус рейса
type StatsResponse struct {
	Count     int                 `json:"count"`
	Threshold int                 `json:"threshold"`
	Status    domain.DemandStatus `json:"status"`
}
