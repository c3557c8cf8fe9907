package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// UseCase use case для получения доступных отправлений маршрута
type UseCase struct {
	availability AvailabilityService
	routes       RouteService
	demand       DemandService
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availability AvailabilityService,
	routes RouteService,
	demand DemandService,
	logger Logger,
) *UseCase {
	return &UseCase{
		availability: availability,
		routes:       routes,
		demand:       demand,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных отправлений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: route=%s, date=%s", req.Route, req.Date)

	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableSlots: date=%s is in the past", req.Date)
		return nil, fmt.Errorf("%w: %s is in the past", ErrInvalidDate, req.Date)
	}

	// 3. Получаем блокировки
	blocked, err := uc.availability.ListBlocked(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked: %v", ErrInternal, err)
	}

	// 4. Проверяем, предлагается ли маршрут
	offerable, err := uc.routes.IsOfferable(ctx, req.Route)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get route config: %v", err)
		return nil, fmt.Errorf("%w: failed to get route config: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:        req.Date,
		Route:       req.Route,
		DemandGated: req.Route.IsDemandGated(),
		Offerable:   offerable,
		DateBlocked: blocked.IsDateBlocked(req.Date),
		Slots:       make([]Slot, 0, len(domain.Timetable[req.Route])),
	}

	// 5. Собираем отправления по расписанию
	today := isSameDay(date, now)
	for _, label := range domain.Timetable[req.Route] {
		slot := Slot{
			Time:     label,
			Blocked:  blocked.IsSlotBlocked(req.Date, req.Route, label),
			Departed: today && hasDeparted(label, now),
		}

		// 6. Для рейсов по спросу добавляем текущий счетчик
		if resp.DemandGated {
			stats, err := uc.demand.Stats(ctx, req.Date, label)
			if err != nil {
				uc.logger.Error("GetAvailableSlots: failed to get demand stats: date=%s, time=%s, error=%v",
					req.Date, label, err)
				return nil, fmt.Errorf("%w: failed to get demand stats: %v", ErrInternal, err)
			}
			slot.Demand = &Demand{Count: stats.Count, Threshold: stats.Threshold, Status: stats.Status}
		}

		resp.Slots = append(resp.Slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: route=%s, date=%s, slots=%d, offerable=%t, dateBlocked=%t",
		req.Route, req.Date, len(resp.Slots), resp.Offerable, resp.DateBlocked)

	return resp, nil
}

// validateRequest валидирует входные данные запроса и возвращает разобранную дату
func validateRequest(req *Request) (time.Time, error) {
	req.Date = domain.TrimDate(req.Date)
	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Route.IsKnown() {
		return time.Time{}, fmt.Errorf("%w: %q", ErrUnknownRoute, req.Route)
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	return date, nil
}

// hasDeparted проверяет, что время отправления уже прошло относительно now
func hasDeparted(label string, now time.Time) bool {
	t, err := time.Parse(domain.LabelFormat, label)
	if err != nil {
		return false
	}
	departure := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	return !departure.After(now)
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
