package list_demand

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

type DemandService interface {
	List(ctx context.Context, date string) (*models.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
