package confirm_demand

import (
	"context"

	confirmDemand "github.com/m04kA/SMC-ShuttleService/internal/usecase/confirm_demand"
)

type ConfirmDemandUseCase interface {
	Execute(ctx context.Context, req *confirmDemand.Request) (*confirmDemand.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
