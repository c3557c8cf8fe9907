package register_yoco_webhook

import "context"

type WebhookGateway interface {
	Configured() bool
	RegisterWebhook(ctx context.Context, name, webhookURL string) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
