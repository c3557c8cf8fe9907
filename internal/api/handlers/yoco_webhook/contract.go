package yoco_webhook

import (
	"context"

	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
)

type PaymentService interface {
	HandleWebhook(ctx context.Context, event *models.WebhookEvent) (*models.WebhookResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
