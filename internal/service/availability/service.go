package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

// Service сервис блокировок дат и слотов
type Service struct {
	repo   AvailabilityRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(repo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// BlockDate блокирует дату целиком. Дата обрезается до 10 символов и больше не проверяется.
func (s *Service) BlockDate(ctx context.Context, date string) error {
	date = domain.TrimDate(date)
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.repo.BlockDate(ctx, date); err != nil {
		s.logger.Error("BlockDate: repository error: date=%s, error=%v", date, err)
		return fmt.Errorf("%w: BlockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockDate: date=%s blocked", date)
	return nil
}

func (s *Service) UnblockDate(ctx context.Context, date string) error {
	date = domain.TrimDate(date)
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.repo.UnblockDate(ctx, date); err != nil {
		s.logger.Error("UnblockDate: repository error: date=%s, error=%v", date, err)
		return fmt.Errorf("%w: UnblockDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockDate: date=%s unblocked", date)
	return nil
}

func (s *Service) UnblockAllDates(ctx context.Context) error {
	if err := s.repo.UnblockAllDates(ctx); err != nil {
		s.logger.Error("UnblockAllDates: repository error: %v", err)
		return fmt.Errorf("%w: UnblockAllDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockAllDates: all dates unblocked")
	return nil
}

func (s *Service) BlockSlot(ctx context.Context, req *models.SlotRequest) error {
	slot, err := validateSlot(req)
	if err != nil {
		return err
	}

	if err := s.repo.BlockSlot(ctx, slot); err != nil {
		s.logger.Error("BlockSlot: repository error: slot=%s, error=%v", slot.Key(), err)
		return fmt.Errorf("%w: BlockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BlockSlot: slot=%s blocked", slot.Key())
	return nil
}

func (s *Service) UnblockSlot(ctx context.Context, req *models.SlotRequest) error {
	slot, err := validateSlot(req)
	if err != nil {
		return err
	}

	if err := s.repo.UnblockSlot(ctx, slot); err != nil {
		s.logger.Error("UnblockSlot: repository error: slot=%s, error=%v", slot.Key(), err)
		return fmt.Errorf("%w: UnblockSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UnblockSlot: slot=%s unblocked", slot.Key())
	return nil
}

// ListBlocked возвращает все заблокированные даты и слоты
func (s *Service) ListBlocked(ctx context.Context) (*models.BlockedList, error) {
	dates, slots, err := s.repo.ListBlocked(ctx)
	if err != nil {
		s.logger.Error("ListBlocked: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocked - repository error: %v", ErrInternal, err)
	}

	return &models.BlockedList{Dates: dates, Slots: slots}, nil
}

func validateSlot(req *models.SlotRequest) (domain.BlockedSlot, error) {
	slot := req.ToDomainSlot()
	if slot.Date == "" || slot.Route == "" || slot.Time == "" {
		return domain.BlockedSlot{}, fmt.Errorf("%w: date, route and time are required", ErrInvalidInput)
	}
	return slot, nil
}
