package get_route_config

import "github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"

// ConfigResponse конфигурация маршрутов по спросу
type ConfigResponse struct {
	Enabled   bool            `json:"enabled"`
	Threshold int             `json:"threshold"`
	Routes    map[string]bool `json:"routes"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP ответ
func FromServiceResponse(cfg *models.ConfigResponse) *ConfigResponse {
	routes := make(map[string]bool, len(cfg.Routes))
	for k, v := range cfg.Routes {
		routes[string(k)] = v
	}
	return &ConfigResponse{
		Enabled:   cfg.Enabled,
		Threshold: cfg.Threshold,
		Routes:    routes,
	}
}
