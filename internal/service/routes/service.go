package routes

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/infra/storage/routeconfig"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

// Service сервис конфигурации маршрутов по спросу
type Service struct {
	repo      RouteConfigRepository
	threshold int
	logger    Logger
}

// NewService создает новый экземпляр сервиса конфигурации маршрутов
func NewService(repo RouteConfigRepository, threshold int, logger Logger) *Service {
	return &Service{
		repo:      repo,
		threshold: threshold,
		logger:    logger,
	}
}

func (s *Service) Get(ctx context.Context) (*models.ConfigResponse, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg, s.threshold), nil
}

// Update применяет только переданные флаги.
// Неизвестные маршруты игнорируются, порог не меняется.
func (s *Service) Update(ctx context.Context, req *models.UpdateRequest) (*models.ConfigResponse, error) {
	upd := routeconfig.Update{
		Enabled: req.Enabled,
		Routes:  make(map[domain.RouteID]bool),
	}

	for route, enabled := range req.Routes {
		if enabled == nil {
			continue
		}
		if !route.IsDemandGated() {
			s.logger.Warn("Update: ignoring unknown route=%s", route)
			continue
		}
		upd.Routes[route] = *enabled
	}

	if req.Threshold != nil && *req.Threshold != s.threshold {
		s.logger.Info("Update: threshold=%d ignored, effective threshold=%d", *req.Threshold, s.threshold)
	}

	cfg, err := s.repo.Apply(ctx, upd)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: route config updated: enabled=%t, routes=%v", cfg.Enabled, cfg.Routes)
	return models.FromDomainConfig(cfg, s.threshold), nil
}

// IsOfferable returns true if the route can be offered to customers right now
func (s *Service) IsOfferable(ctx context.Context, route domain.RouteID) (bool, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		s.logger.Error("IsOfferable: repository error: %v", err)
		return false, fmt.Errorf("%w: IsOfferable - repository error: %v", ErrInternal, err)
	}
	return cfg.IsOfferable(route), nil
}
