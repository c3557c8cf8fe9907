package get_graph_busy

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
)

type GraphCalendar interface {
	Configured() bool
	BusyTimes(ctx context.Context, upn, start, end string) ([]string, []graph.Event, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
