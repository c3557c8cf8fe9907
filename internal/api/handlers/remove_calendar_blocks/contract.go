package remove_calendar_blocks

import (
	"context"

	removeBlocks "github.com/m04kA/SMC-ShuttleService/internal/usecase/remove_calendar_blocks"
)

type RemoveBlocksUseCase interface {
	Execute(ctx context.Context, req *removeBlocks.Request) (*removeBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
