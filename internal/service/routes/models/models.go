package models

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// UpdateRequest частичное обновление, nil поля не меняются
type UpdateRequest struct {
	Enabled *bool
	Routes  map[domain.RouteID]*bool
	// Threshold принимается, но не применяется: порог фиксируется при старте
	Threshold *int
}

// ConfigResponse конфигурация маршрутов по спросу
type ConfigResponse struct {
	Enabled   bool
	Threshold int
	Routes    map[domain.RouteID]bool
}

// FromDomainConfig конвертирует доменную модель в ответ сервиса
func FromDomainConfig(cfg *domain.RouteConfig, threshold int) *ConfigResponse {
	routes := make(map[domain.RouteID]bool, len(domain.DemandRoutes))
	for _, r := range domain.DemandRoutes {
		routes[r] = cfg.Routes[r]
	}
	return &ConfigResponse{
		Enabled:   cfg.Enabled,
		Threshold: threshold,
		Routes:    routes,
	}
}
