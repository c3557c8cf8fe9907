package demand

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// DemandRepository интерфейс хранилища заявок
type DemandRepository interface {
	Add(ctx context.Context, req *domain.DemandRequest) (*domain.DemandAggregate, error)
	Get(ctx context.Context, key domain.DemandKey) (*domain.DemandAggregate, error)
	List(ctx context.Context, date string) ([]*domain.DemandAggregate, error)
	Resolve(ctx context.Context, key domain.DemandKey, status domain.DemandStatus) (*domain.DemandAggregate, bool, error)
	Requests(ctx context.Context, key domain.DemandKey) ([]*domain.DemandRequest, error)
}

// MetricsRecorder интерфейс для учета бизнес-метрик
type MetricsRecorder interface {
	DemandSubmitted(route string, passengers int)
	DemandResolved(outcome string)
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

type noopMetrics struct{}

func (noopMetrics) DemandSubmitted(string, int) {}
func (noopMetrics) DemandResolved(string)       {}
