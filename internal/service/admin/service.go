package admin

import (
	"crypto/subtle"
	"sync"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Service единый PIN администратора.
// Действующий PIN: установленный во время работы, иначе заданный в конфигурации.
type Service struct {
	mu         sync.RWMutex
	defaultPin string
	runtimePin string
	logger     Logger
}

// NewService создает сервис с PIN из конфигурации (пустой означает открытый доступ)
func NewService(defaultPin string, logger Logger) *Service {
	return &Service{
		defaultPin: defaultPin,
		logger:     logger,
	}
}

// Verify succeeds if no PIN is configured or the given one matches
func (s *Service) Verify(pin string) error {
	s.mu.RLock()
	effective := s.effective()
	s.mu.RUnlock()

	if effective == "" {
		return nil
	}
	if !equal(pin, effective) {
		s.logger.Warn("Verify: invalid pin")
		return ErrUnauthorized
	}
	return nil
}

// ChangePin заменяет действующий PIN.
// Если PIN не был задан, новый устанавливается без проверки текущего.
func (s *Service) ChangePin(current, next string) error {
	if len(next) < domain.MinPinLength || len(next) > domain.MaxPinLength {
		s.logger.Warn("ChangePin: invalid new pin length=%d", len(next))
		return ErrInvalidPin
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	effective := s.effective()
	if effective != "" && !equal(current, effective) {
		s.logger.Warn("ChangePin: current pin mismatch")
		return ErrUnauthorized
	}

	s.runtimePin = next
	if effective == "" {
		s.logger.Info("ChangePin: pin set for the first time")
	} else {
		s.logger.Info("ChangePin: pin changed")
	}
	return nil
}

// RequiresPin returns true if an effective PIN is configured
func (s *Service) RequiresPin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.effective() != ""
}

func (s *Service) effective() string {
	if s.runtimePin != "" {
		return s.runtimePin
	}
	return s.defaultPin
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
