package notifications

import "context"

// Sender транспорт отправки писем (Graph, Resend)
type Sender interface {
	Name() string
	SendMail(ctx context.Context, to, cc []string, subject, html string) error
}

// MetricsRecorder интерфейс для учета попыток отправки
type MetricsRecorder interface {
	NotificationResult(transport string, ok bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) NotificationResult(string, bool) {}
