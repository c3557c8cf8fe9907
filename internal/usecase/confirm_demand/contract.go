package confirm_demand

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	demandModels "github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

// DemandService интерфейс агрегатора заявок
type DemandService interface {
	Confirm(ctx context.Context, date, time string) (*demandModels.ResolveResponse, error)
	Requests(ctx context.Context, date, time string) ([]*domain.DemandRequest, error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Send(ctx context.Context, to, cc []string, subject, html string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
