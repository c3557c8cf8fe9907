package push_calendar_blocks

import (
	"context"

	pushBlocks "github.com/m04kA/SMC-ShuttleService/internal/usecase/push_calendar_blocks"
)

type PushBlocksUseCase interface {
	Execute(ctx context.Context, req *pushBlocks.Request) (*pushBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
