package submit_demand

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
)

// SubmitRequest тело заявки. passengers принимается числом или строкой.
type SubmitRequest struct {
	Route      string      `json:"route"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Passengers json.Number `json:"passengers"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Phone      string      `json:"phone"`
}

// SubmitResponse ответ с текущим счетчиком
type SubmitResponse struct {
	OK        bool `json:"ok"`
	Count     int  `json:"count"`
	Threshold int  `json:"threshold"`
}

// ToServiceRequest конвертирует HTTP запрос в запрос к сервису.
// Нечисловое или вне диапазона количество пассажиров отклоняется сервисом.
func (r *SubmitRequest) ToServiceRequest() *models.SubmitRequest {
	return &models.SubmitRequest{
		Route:      domain.RouteID(r.Route),
		Date:       r.Date,
		Time:       r.Time,
		Passengers: parsePassengers(r.Passengers),
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
	}
}

// parsePassengers приводит значение к int без переполнения
func parsePassengers(n json.Number) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(n.String()), 64)
	switch {
	case err != nil, math.IsNaN(f), f < 0:
		return 0
	case f > domain.MaxPassengers:
		return domain.MaxPassengers + 1
	default:
		return int(f)
	}
}
