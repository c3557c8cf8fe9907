package get_ics_busy

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
)

type ICSCalendar interface {
	Configured() bool
	BusyTimes(ctx context.Context, start, end string) ([]string, []ics.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
