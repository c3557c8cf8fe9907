package middleware

import "time"

// PinVerifier интерфейс проверки PIN администратора
type PinVerifier interface {
	Verify(pin string) error
}

// MetricsRecorder интерфейс для учета HTTP запросов
type MetricsRecorder interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
