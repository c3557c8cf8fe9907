package demand

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	demandRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/demand"
	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

// Service агрегатор заявок на маршруты по спросу.
// Порог носит информационный характер и не влияет на статус.
type Service struct {
	repo         DemandRepository
	metrics      MetricsRecorder
	timeProvider TimeProvider
	threshold    int
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок. metrics может быть nil.
func NewService(repo DemandRepository, threshold int, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Service{
		repo:         repo,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		threshold:    threshold,
		logger:       logger,
	}
}

// Threshold возвращает порог, зафиксированный при старте
func (s *Service) Threshold() int {
	return s.threshold
}

// Submit добавляет заявку и возвращает обновленный счетчик
func (s *Service) Submit(ctx context.Context, req *models.SubmitRequest) (*models.SubmitResponse, error) {
	req.Date = domain.TrimDate(req.Date)

	if err := validateSubmit(req); err != nil {
		s.logger.Warn("Submit: validation failed: %v", err)
		return nil, err
	}

	request := &domain.DemandRequest{
		ID:         uuid.NewString(),
		Route:      req.Route,
		Date:       req.Date,
		Time:       req.Time,
		Passengers: req.Passengers,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CreatedAt:  s.timeProvider.Now().UTC(),
	}

	agg, err := s.repo.Add(ctx, request)
	if err != nil {
		s.logger.Error("Submit: repository error: key=%s, error=%v", request.Key(), err)
		return nil, fmt.Errorf("%w: Submit - repository error: %v", ErrInternal, err)
	}

	s.metrics.DemandSubmitted(string(req.Route), req.Passengers)

	if agg.ReachedThreshold(s.threshold) {
		s.logger.Info("Submit: key=%s reached threshold: count=%d, threshold=%d", agg.Key(), agg.Count, s.threshold)
	}

	s.logger.Info("Submit: request id=%s added to key=%s, passengers=%d, count=%d",
		request.ID, request.Key(), req.Passengers, agg.Count)

	return &models.SubmitResponse{Count: agg.Count, Threshold: s.threshold}, nil
}

// Stats возвращает счетчик и статус ключа, для неизвестного ключа нулевой счетчик и статус unknown
func (s *Service) Stats(ctx context.Context, date, time string) (*models.StatsResponse, error) {
	key := domain.DemandKey{Date: domain.TrimDate(date), Time: time}

	agg, err := s.repo.Get(ctx, key)
	if err != nil {
		if errors.Is(err, demandRepo.ErrKeyNotFound) {
			return &models.StatsResponse{
				Count:     0,
				Threshold: s.threshold,
				Status:    domain.DemandStatusUnknown,
			}, nil
		}
		s.logger.Error("Stats: repository error: key=%s, error=%v", key, err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	return &models.StatsResponse{
		Count:     agg.Count,
		Threshold: s.threshold,
		Status:    agg.Status,
	}, nil
}

// List возвращает ключи, отсортированные строкой date+time.
// Время хранится как метка ("6:00 AM"), поэтому порядок лексикографический, а не хронологический.
func (s *Service) List(ctx context.Context, date string) (*models.ListResponse, error) {
	date = domain.TrimDate(date)

	items, err := s.repo.List(ctx, date)
	if err != nil {
		s.logger.Error("List: repository error: date=%s, error=%v", date, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Key().SortKey() < items[j].Key().SortKey()
	})

	return &models.ListResponse{Items: items, Threshold: s.threshold}, nil
}

// Confirm подтверждает рейс. Уведомление пассажиров выполняет вызывающая сторона.
func (s *Service) Confirm(ctx context.Context, date, time string) (*models.ResolveResponse, error) {
	return s.resolve(ctx, "Confirm", date, time, domain.DemandStatusConfirmed)
}

// Decline отклоняет рейс
func (s *Service) Decline(ctx context.Context, date, time string) (*models.ResolveResponse, error) {
	return s.resolve(ctx, "Decline", date, time, domain.DemandStatusDeclined)
}

// Requests возвращает заявки ключа
func (s *Service) Requests(ctx context.Context, date, time string) ([]*domain.DemandRequest, error) {
	key := domain.DemandKey{Date: domain.TrimDate(date), Time: time}

	requests, err := s.repo.Requests(ctx, key)
	if err != nil {
		if errors.Is(err, demandRepo.ErrKeyNotFound) {
			return nil, ErrDemandNotFound
		}
		s.logger.Error("Requests: repository error: key=%s, error=%v", key, err)
		return nil, fmt.Errorf("%w: Requests - repository error: %v", ErrInternal, err)
	}

	return requests, nil
}

func (s *Service) resolve(ctx context.Context, op, date, time string, status domain.DemandStatus) (*models.ResolveResponse, error) {
	key := domain.DemandKey{Date: domain.TrimDate(date), Time: time}

	agg, changed, err := s.repo.Resolve(ctx, key, status)
	if err != nil {
		switch {
		case errors.Is(err, demandRepo.ErrKeyNotFound):
			s.logger.Warn("%s: key=%s not found", op, key)
			return nil, ErrDemandNotFound
		case errors.Is(err, demandRepo.ErrAlreadyResolved):
			current := domain.DemandStatusUnknown
			if agg != nil {
				current = agg.Status
			}
			s.logger.Warn("%s: key=%s already resolved as %s", op, key, current)
			return nil, fmt.Errorf("%w: current status is %s", ErrAlreadyResolved, current)
		default:
			s.logger.Error("%s: repository error: key=%s, error=%v", op, key, err)
			return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
		}
	}

	if changed {
		s.metrics.DemandResolved(string(status))
		s.logger.Info("%s: key=%s set to %s, count=%d", op, key, status, agg.Count)
	} else {
		s.logger.Info("%s: key=%s already %s, nothing to do", op, key, status)
	}

	return &models.ResolveResponse{Aggregate: agg, Changed: changed}, nil
}

func validateSubmit(req *models.SubmitRequest) error {
	var missing []string
	if req.Date == "" {
		missing = append(missing, "date")
	}
	if req.Time == "" {
		missing = append(missing, "time")
	}
	if req.Passengers <= 0 || req.Passengers > domain.MaxPassengers {
		missing = append(missing, "passengers")
	}
	if req.Name == "" {
		missing = append(missing, "name")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Phone == "" {
		missing = append(missing, "phone")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing or invalid fields: %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
