package update_route_config

import (
	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
)

// UpdateRequest частичное обновление. Применяются только значения типа bool.
type UpdateRequest struct {
	Enabled   interface{}            `json:"enabled"`
	Routes    map[string]interface{} `json:"routes"`
	Threshold interface{}            `json:"threshold"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос к сервису
func (r *UpdateRequest) ToServiceRequest() *models.UpdateRequest {
	req := &models.UpdateRequest{
		Enabled: asBool(r.Enabled),
		Routes:  make(map[domain.RouteID]*bool, len(r.Routes)),
	}
	for k, v := range r.Routes {
		if b := asBool(v); b != nil {
			req.Routes[domain.RouteID(k)] = b
		}
	}
	if f, ok := r.Threshold.(float64); ok {
		n := int(f)
		req.Threshold = &n
	}
	return req
}

func asBool(v interface{}) *bool {
	b, ok := v.(bool)
	if !ok {
		return nil
	}
	return &b
}

// ConfigResponse конфигурация после обновления
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
