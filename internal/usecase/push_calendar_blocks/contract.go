package push_calendar_blocks

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

// AvailabilityService интерфейс чтения блокировок
type AvailabilityService interface {
	ListBlocked(ctx context.Context) (*availabilityModels.BlockedList, error)
}

// GraphCalendar интерфейс записи в календарь Microsoft Graph
type GraphCalendar interface {
	Configured() bool
	CreateEvent(ctx context.Context, upn string, ev *graph.NewEvent) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
