package submit_demand

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

type DemandService interface {
	Submit(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
