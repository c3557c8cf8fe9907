package remove_calendar_blocks

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
)

// GraphCalendar интерфейс календаря Microsoft Graph
type GraphCalendar interface {
	Configured() bool
	ListEvents(ctx context.Context, upn, start, end string) ([]graph.Event, error)
	DeleteEvent(ctx context.Context, upn, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
