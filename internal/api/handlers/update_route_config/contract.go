package update_route_config

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

type RouteService interface {
	Update(ctx context.Context, req *models.UpdateRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
