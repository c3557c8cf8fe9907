package payments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
)

// PaymentRepository интерфейс хранилища статусов платежей
type PaymentRepository interface {
	Save(ctx context.Context, ref *domain.PaymentReference) error
	Get(ctx context.Context, reference string) (*domain.PaymentReference, error)
	FindByCheckoutID(ctx context.Context, checkoutID string) (*domain.PaymentReference, error)
}

// CheckoutGateway интерфейс платежного шлюза
type CheckoutGateway interface {
	Configured() bool
	CreateCheckout(ctx context.Context, checkout *yoco.CheckoutRequest) (*yoco.Checkout, error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Send(ctx context.Context, to, cc []string, subject, html string) bool
}

// MetricsRecorder интерфейс для учета статусов платежей
type MetricsRecorder interface {
	PaymentStatus(status string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) PaymentStatus(string) {}
