package get_route_config

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

type RouteService interface {
	Get(ctx context.Context) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
