package push_calendar_blocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
)

const eventLayout = "2006-01-02T15:04:05"

// UseCase use case переноса блокировок дня в календарь Outlook
type UseCase struct {
	availability AvailabilityService
	graph        GraphCalendar
	cfg          Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availability AvailabilityService, graph GraphCalendar, cfg Config, logger Logger) *UseCase {
	return &UseCase{
		availability: availability,
		graph:        graph,
		cfg:          cfg,
		logger:       logger,
	}
}

// Execute создает часовое событие на каждое заблокированное время дня и событие
// на весь день, если заблокирована сама дата. Ошибки отдельных событий пропускаются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Проверяем конфигурацию и входные данные
	if !uc.graph.Configured() {
		return nil, ErrNotConfigured
	}

	date := domain.TrimDate(req.Date)
	day, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	uc.logger.Info("PushCalendarBlocks: date=%s, upn=%s", date, req.UPN)

	// 2. Получаем блокировки
	blocked, err := uc.availability.ListBlocked(ctx)
	if err != nil {
		uc.logger.Error("PushCalendarBlocks: failed to list blocked: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked: %v", ErrInternal, err)
	}

	resp := &Response{Date: date, Created: make([]CreatedEvent, 0)}

	// 3. Одно событие на время, даже если заблокированы оба маршрута
	seen := make(map[string]struct{})
	for _, slot := range blocked.Slots {
		if slot.Date != date {
			continue
		}
		clock := domain.LabelToClock(slot.Time)
		if _, ok := seen[clock]; ok {
			continue
		}
		seen[clock] = struct{}{}

		start, err := time.Parse(domain.DateFormat+" "+domain.ClockFormat, date+" "+clock)
		if err != nil {
			uc.logger.Warn("PushCalendarBlocks: skip unparsable slot time=%q", slot.Time)
			continue
		}

		id, err := uc.create(ctx, req.UPN, &graph.NewEvent{
			Subject: uc.cfg.Subject,
			ShowAs:  "busy",
			Start:   uc.at(start),
			End:     uc.at(start.Add(time.Hour)),
			Body:    graph.ItemBody{ContentType: "Text", Content: fmt.Sprintf("Blocked slot %s on %s", clock, date)},
		})
		if err != nil {
			if errors.Is(err, ErrNotConfigured) {
				return nil, err
			}
			resp.Failed++
			continue
		}
		resp.Created = append(resp.Created, CreatedEvent{ID: id, Time: clock})
	}

	// 4. Заблокированная дата целиком
	if blocked.IsDateBlocked(date) {
		id, err := uc.create(ctx, req.UPN, &graph.NewEvent{
			Subject:  uc.cfg.Subject + " (All Day)",
			ShowAs:   "busy",
			IsAllDay: true,
			Start:    uc.at(day),
			End:      uc.at(day.AddDate(0, 0, 1)),
			Body:     graph.ItemBody{ContentType: "Text", Content: "Blocked date " + date},
		})
		switch {
		case errors.Is(err, ErrNotConfigured):
			return nil, err
		case err != nil:
			resp.Failed++
		default:
			resp.Created = append(resp.Created, CreatedEvent{ID: id, Time: AllDay})
		}
	}

	uc.logger.Info("PushCalendarBlocks: date=%s, created=%d, failed=%d", date, len(resp.Created), resp.Failed)
	return resp, nil
}

func (uc *UseCase) create(ctx context.Context, upn string, ev *graph.NewEvent) (string, error) {
	id, err := uc.graph.CreateEvent(ctx, upn, ev)
	if err != nil {
		if errors.Is(err, graph.ErrNotConfigured) {
			return "", fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		uc.logger.Warn("PushCalendarBlocks: failed to create event start=%s: %v", ev.Start.DateTime, err)
		return "", err
	}
	return id, nil
}

func (uc *UseCase) at(t time.Time) graph.DateTimeZone {
	return graph.DateTimeZone{DateTime: t.Format(eventLayout), TimeZone: uc.cfg.TimeZone}
}
