package block_slot

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

type AvailabilityService interface {
	BlockSlot(ctx context.Context, req *models.SlotRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
