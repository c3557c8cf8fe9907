package list_blocked

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlocked(ctx context.Context) (*models.BlockedList, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
