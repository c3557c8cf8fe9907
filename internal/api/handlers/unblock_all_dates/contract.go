package unblock_all_dates

import "context"

type AvailabilityService interface {
	UnblockAllDates(ctx context.Context) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
