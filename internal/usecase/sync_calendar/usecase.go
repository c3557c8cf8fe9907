package sync_calendar

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
)

// UseCase use case переноса занятых времен календаря в блокировки слотов
// маршрутов по спросу
type UseCase struct {
	ics          ICSCalendar
	graph        GraphCalendar
	availability AvailabilityService
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(ics ICSCalendar, graph GraphCalendar, availability AvailabilityService, logger Logger) *UseCase {
	return &UseCase{
		ics:          ics,
		graph:        graph,
		availability: availability,
		logger:       logger,
	}
}

// Execute блокирует слоты обоих маршрутов по спросу для каждого занятого времени дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date := domain.TrimDate(req.Date)
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	source := strings.ToLower(strings.TrimSpace(req.Source))
	if source == "" {
		source = SourceICS
	}

	uc.logger.Info("SyncCalendar: date=%s, source=%s", date, source)

	// 2. Читаем занятые времена
	var (
		clocks []string
		err    error
	)
	switch source {
	case SourceICS:
		clocks, _, err = uc.ics.BusyTimes(ctx, date, date)
	case SourceGraph:
		clocks, _, err = uc.graph.BusyTimes(ctx, "", date, date)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, req.Source)
	}
	if err != nil {
		uc.logger.Error("SyncCalendar: failed to read %s calendar: %v", source, err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	resp := &Response{Date: date, Source: source, Busy: make([]string, 0, len(clocks))}

	// 3. Блокируем слоты
	for _, clock := range clocks {
		label := domain.ClockToLabel(clock)
		resp.Busy = append(resp.Busy, label)

		for _, route := range domain.DemandRoutes {
			err := uc.availability.BlockSlot(ctx, &availabilityModels.SlotRequest{
				Date:  date,
				Route: route,
				Time:  label,
			})
			if err != nil {
				uc.logger.Error("SyncCalendar: failed to block slot: date=%s, route=%s, time=%s, error=%v",
					date, route, label, err)
				return nil, fmt.Errorf("%w: failed to block slot: %v", ErrInternal, err)
			}
			resp.Synced++
		}
	}

	uc.logger.Info("SyncCalendar: date=%s, source=%s, busy=%d, synced=%d", date, source, len(resp.Busy), resp.Synced)
	return resp, nil
}
