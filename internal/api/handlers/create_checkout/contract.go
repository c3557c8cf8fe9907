package create_checkout

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
)

type PaymentService interface {
	CreateCheckout(ctx context.Context, req *models.CreateCheckoutRequest) (*models.CreateCheckoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
