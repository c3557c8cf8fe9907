package list_yoco_webhooks

import "context"

type WebhookGateway interface {
	Configured() bool
	ListWebhooks(ctx context.Context) (interface{}, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
