package notifications

import (
	"context"
	"strings"
)

// Service отправляет письма, перебирая транспорты по порядку до первого успеха.
// Ошибки не возвращаются: итог сообщается булевым значением.
type Service struct {
	senders []Sender
	metrics MetricsRecorder
	logger  Logger
}

// NewService создает сервис уведомлений. metrics может быть nil.
func NewService(senders []Sender, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		senders: senders,
		metrics: metrics,
		logger:  logger,
	}
}

// Send returns true if any transport accepted the message
func (s *Service) Send(ctx context.Context, to, cc []string, subject, html string) bool {
	to = compact(to)
	if len(to) == 0 {
		s.logger.Warn("Send: no recipients, subject=%q", subject)
		return false
	}
	cc = compact(cc)

	for _, sender := range s.senders {
		err := sender.SendMail(ctx, to, cc, subject, html)
		s.metrics.NotificationResult(sender.Name(), err == nil)
		if err == nil {
			s.logger.Info("Send: sent via %s: to=%s, subject=%q", sender.Name(), strings.Join(to, ","), subject)
			return true
		}
		s.logger.Warn("Send: %s failed: to=%s, error=%v", sender.Name(), strings.Join(to, ","), err)
	}

	s.logger.Error("Send: all transports failed: to=%s, subject=%q", strings.Join(to, ","), subject)
	return false
}

func compact(addrs []string) []string {
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}
