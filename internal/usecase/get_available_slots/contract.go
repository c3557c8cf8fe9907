package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
	demandModels "github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

// AvailabilityService интерфейс сервиса блокировок
type AvailabilityService interface {
	ListBlocked(ctx context.Context) (*availabilityModels.BlockedList, error)
}

// RouteService интерфейс сервиса конфигурации маршрутов
type RouteService interface {
	IsOfferable(ctx context.Context, route domain.RouteID) (bool, error)
}

// DemandService интерфейс агрегатора заявок
type DemandService interface {
	Stats(ctx context.Context, date, time string) (*demandModels.StatsResponse, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
