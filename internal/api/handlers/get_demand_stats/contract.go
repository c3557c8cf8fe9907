package get_demand_stats

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

type DemandService interface {
	Stats(ctx context.Context, date, time string) (*models.StatsResponse, error)
	Threshold() int
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
