package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shuttle"

// Metrics набор метрик сервиса
type Metrics struct {
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	demandSubmits *prometheus.CounterVec
	passengers    *prometheus.CounterVec
	resolutions   *prometheus.CounterVec
	notifications *prometheus.CounterVec
	payments      *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном реестре (удобно для тестов)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "route"}),
		demandSubmits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "demand_requests_total",
			Help:        "Demand requests submitted for demand-gated routes",
			ConstLabels: labels,
		}, []string{"route"}),
		passengers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "demand_passengers_total",
			Help:        "Passengers requested on demand-gated routes",
			ConstLabels: labels,
		}, []string{"route"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "demand_resolutions_total",
			Help:        "Demand keys resolved by an admin",
			ConstLabels: labels,
		}, []string{"outcome"}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "notifications_total",
			Help:        "E-mail notification attempts by transport",
			ConstLabels: labels,
		}, []string{"transport", "result"}),
		payments: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "payment_events_total",
			Help:        "Payment status updates by status",
			ConstLabels: labels,
		}, []string{"status"}),
	}
}

// ObserveHTTPRequest записывает результат HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// DemandSubmitted учитывает заявку на маршрут по спросу
func (m *Metrics) DemandSubmitted(route string, passengers int) {
	m.demandSubmits.WithLabelValues(route).Inc()
	m.passengers.WithLabelValues(route).Add(float64(passengers))
}

// DemandResolved учитывает подтверждение или отклонение поездки
func (m *Metrics) DemandResolved(outcome string) {
	m.resolutions.WithLabelValues(outcome).Inc()
}

// NotificationResult учитывает попытку отправки письма через транспорт
func (m *Metrics) NotificationResult(transport string, ok bool) {
	result := "failed"
	if ok {
		result = "sent"
	}
	m.notifications.WithLabelValues(transport, result).Inc()
}

// PaymentStatus учитывает обновление статуса платежа
func (m *Metrics) PaymentStatus(status string) {
	m.payments.WithLabelValues(status).Inc()
}
