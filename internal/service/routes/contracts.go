package routes

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/infra/storage/routeconfig"
)

// RouteConfigRepository интерфейс хранилища конфигурации маршрутов
type RouteConfigRepository interface {
	Get(ctx context.Context) (*domain.RouteConfig, error)
	Apply(ctx context.Context, upd routeconfig.Update) (*domain.RouteConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
