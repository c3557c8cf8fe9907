package routeconfig

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Update частичное изменение конфигурации: nil означает "не менять"
type Update struct {
	Enabled *bool
	Routes  map[domain.RouteID]bool
}

// MemoryRepository конфигурация маршрутов в памяти процесса
type MemoryRepository struct {
	mu     sync.RWMutex
	config *domain.RouteConfig
}

// NewMemoryRepository создает хранилище с начальной конфигурацией
func NewMemoryRepository(initial *domain.RouteConfig) *MemoryRepository {
	return &MemoryRepository{config: initial.Clone()}
}

func (r *MemoryRepository) Get(_ context.Context) (*domain.RouteConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.config.Clone(), nil
}

// Apply применяет только переданные поля
func (r *MemoryRepository) Apply(_ context.Context, upd Update) (*domain.RouteConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if upd.Enabled != nil {
		r.config.Enabled = *upd.Enabled
	}
	for route, enabled := range upd.Routes {
		r.config.Routes[route] = enabled
	}

	return r.config.Clone(), nil
}
