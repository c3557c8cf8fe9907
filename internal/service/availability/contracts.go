package availability

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// AvailabilityRepository интерфейс хранилища блокировок
type AvailabilityRepository interface {
	BlockDate(ctx context.Context, date string) error
	UnblockDate(ctx context.Context, date string) error
	UnblockAllDates(ctx context.Context) error
	BlockSlot(ctx context.Context, slot domain.BlockedSlot) error
	UnblockSlot(ctx context.Context, slot domain.BlockedSlot) error
	ListBlocked(ctx context.Context) ([]string, []domain.BlockedSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
