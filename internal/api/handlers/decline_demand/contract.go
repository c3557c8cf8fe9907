package decline_demand

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

type DemandService interface {
	Decline(ctx context.Context, date, time string) (*models.ResolveResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
