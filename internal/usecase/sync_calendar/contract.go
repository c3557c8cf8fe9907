package sync_calendar

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

// ICSCalendar интерфейс чтения публичного ICS фида
type ICSCalendar interface {
	BusyTimes(ctx context.Context, start, end string) ([]string, []ics.Event, error)
}

// GraphCalendar интерфейс чтения календаря Microsoft Graph
type GraphCalendar interface {
	BusyTimes(ctx context.Context, upn, start, end string) ([]string, []graph.Event, error)
}

// AvailabilityService интерфейс сервиса блокировок
type AvailabilityService interface {
	BlockSlot(ctx context.Context, req *availabilityModels.SlotRequest) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
