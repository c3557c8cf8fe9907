package remove_calendar_blocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
)

// UseCase use case удаления событий блокировок из календаря Outlook
type UseCase struct {
	graph   GraphCalendar
	subject string
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. subject ищется в теме события без учета регистра.
func NewUseCase(graph GraphCalendar, subject string, logger Logger) *UseCase {
	return &UseCase{
		graph:   graph,
		subject: strings.ToLower(subject),
		logger:  logger,
	}
}

// Execute удаляет события дня, тема которых содержит subject
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.graph.Configured() {
		return nil, ErrNotConfigured
	}

	date := domain.TrimDate(req.Date)
	if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	uc.logger.Info("RemoveCalendarBlocks: date=%s, upn=%s", date, req.UPN)

	events, err := uc.graph.ListEvents(ctx, req.UPN, date, date)
	if err != nil {
		if errors.Is(err, graph.ErrNotConfigured) {
			return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
		uc.logger.Error("RemoveCalendarBlocks: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	resp := &Response{Date: date}
	for _, ev := range events {
		if ev.ID == "" || !strings.Contains(strings.ToLower(ev.Subject), uc.subject) {
			continue
		}
		if err := uc.graph.DeleteEvent(ctx, req.UPN, ev.ID); err != nil {
			uc.logger.Warn("RemoveCalendarBlocks: failed to delete event id=%s: %v", ev.ID, err)
			continue
		}
		resp.Removed++
	}

	uc.logger.Info("RemoveCalendarBlocks: date=%s, events=%d, removed=%d", date, len(events), resp.Removed)
	return resp, nil
}
