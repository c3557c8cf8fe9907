package confirm_demand

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	demandService "github.com/m04kA/SMC-ShuttleService/internal/service/demand"
	"github.com/m04kA/SMC-ShuttleService/internal/service/notifications"
)

// UseCase use case подтверждения рейса по спросу с уведомлением пассажиров
type UseCase struct {
	demand   DemandService
	notifier Notifier
	cfg      Config
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(demand DemandService, notifier Notifier, cfg Config, logger Logger) *UseCase {
	return &UseCase{
		demand:   demand,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// Execute подтверждает рейс. Ошибки отправки писем не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmDemand: date=%s, time=%s", req.Date, req.Time)

	// 1. Меняем статус
	resolved, err := uc.demand.Confirm(ctx, req.Date, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, demandService.ErrDemandNotFound):
			return nil, ErrDemandNotFound
		case errors.Is(err, demandService.ErrAlreadyResolved):
			return nil, fmt.Errorf("%w: %v", ErrAlreadyResolved, err)
		default:
			uc.logger.Error("ConfirmDemand: failed to confirm: %v", err)
			return nil, fmt.Errorf("%w: failed to confirm: %v", ErrInternal, err)
		}
	}

	resp := &Response{Aggregate: resolved.Aggregate, Changed: resolved.Changed}

	// 2. Повторное подтверждение не рассылает письма еще раз
	if !resolved.Changed {
		return resp, nil
	}

	// 3. Получаем заявки ключа
	requests, err := uc.demand.Requests(ctx, req.Date, req.Time)
	if err != nil {
		uc.logger.Error("ConfirmDemand: failed to load requests, notifications skipped: %v", err)
		return resp, nil
	}

	key := resolved.Aggregate.Key()

	// 4. Письмо каждому пассажиру
	for _, r := range requests {
		if r.Email == "" {
			continue
		}
		msg, err := notifications.DemandConfirmedMessage(key, r)
		if err != nil {
			uc.logger.Error("ConfirmDemand: failed to render mail for request id=%s: %v", r.ID, err)
			continue
		}
		if uc.notifier.Send(ctx, []string{r.Email}, []string{uc.cfg.ClientEmail}, msg.Subject, msg.HTML) {
			resp.Notified++
		}
	}

	// 5. Сводка администратору
	if uc.cfg.AdminEmail != "" && len(requests) > 0 {
		resp.AdminNotified = uc.notifyAdmin(ctx, key, requests)
	}

	uc.logger.Info("ConfirmDemand: key=%s confirmed, requests=%d, notified=%d, admin=%t",
		key, len(requests), resp.Notified, resp.AdminNotified)

	return resp, nil
}

func (uc *UseCase) notifyAdmin(ctx context.Context, key domain.DemandKey, requests []*domain.DemandRequest) bool {
	msg, err := notifications.DemandAdminMessage(key, requests)
	if err != nil {
		uc.logger.Error("ConfirmDemand: failed to render admin summary: %v", err)
		return false
	}
	return uc.notifier.Send(ctx, []string{uc.cfg.AdminEmail}, nil, msg.Subject, msg.HTML)
}
