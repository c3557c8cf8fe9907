package get_payment_status

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

type PaymentService interface {
	GetStatus(ctx context.Context, reference string) (*domain.PaymentReference, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
