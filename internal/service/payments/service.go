package payments

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
	"github.com/m04kA/SMC-ShuttleService/internal/service/notifications"
	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
)

// Config параметры платежного сервиса
type Config struct {
	SiteURL     string
	TestMode    bool
	AdminEmail  string
	ClientEmail string
}

// Service создание checkout, прием webhook и статусы оплат
type Service struct {
	repo         PaymentRepository
	gateway      CheckoutGateway
	notifier     Notifier
	metrics      MetricsRecorder
	timeProvider TimeProvider
	cfg          Config
	logger       Logger
}

// NewService создает платежный сервис. metrics может быть nil.
func NewService(cfg Config, repo PaymentRepository, gateway CheckoutGateway, notifier Notifier, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	cfg.SiteURL = normalizeSiteURL(cfg.SiteURL)
	return &Service{
		repo:         repo,
		gateway:      gateway,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		cfg:          cfg,
		logger:       logger,
	}
}

// Ready returns true if checkouts can be created (secret key present or test mode)
func (s *Service) Ready() bool {
	return s.gateway.Configured() || s.cfg.TestMode
}

// CreateCheckout создает checkout в Yoco. В тестовом режиме шлюз не вызывается,
// а ссылка сразу помечается оплаченной.
func (s *Service) CreateCheckout(ctx context.Context, req *models.CreateCheckoutRequest) (*models.CreateCheckoutResponse, error) {
	// 1. Проверяем, что платежи вообще доступны
	if !s.Ready() {
		s.logger.Error("CreateCheckout: secret key is not configured and test mode is off")
		return nil, ErrNotConfigured
	}

	// 2. Валидация суммы
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		s.logger.Warn("CreateCheckout: invalid amount=%v", req.Amount)
		return nil, ErrInvalidAmount
	}

	currency := strings.TrimSpace(req.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	metadata := make(map[string]interface{}, len(req.Metadata)+1)
	for k, v := range req.Metadata {
		metadata[k] = v
	}
	metadata["clientReferenceId"] = req.ClientReferenceID

	successURL := s.cfg.SiteURL + "/payment/success?ref=" + url.QueryEscape(req.ClientReferenceID)

	// 3. Тестовый режим: фиктивный checkout
	if s.cfg.TestMode {
		checkoutID := fmt.Sprintf("test_%d", s.timeProvider.Now().UnixMilli())
		s.saveReference(ctx, req.ClientReferenceID, domain.PaymentStatusSucceeded, checkoutID)

		s.logger.Info("CreateCheckout: test mode checkout id=%s, ref=%s", checkoutID, req.ClientReferenceID)
		return &models.CreateCheckoutResponse{ID: checkoutID, RedirectURL: successURL}, nil
	}

	// 4. Создаем checkout в Yoco
	checkout, err := s.gateway.CreateCheckout(ctx, &yoco.CheckoutRequest{
		Amount:            int64(math.Round(req.Amount)),
		Currency:          currency,
		Metadata:          metadata,
		ClientReferenceID: req.ClientReferenceID,
		SuccessURL:        successURL,
		CancelURL:         s.cfg.SiteURL + "/payment/cancel",
		FailureURL:        s.cfg.SiteURL + "/payment/failure",
	})
	if err != nil {
		s.logger.Error("CreateCheckout: gateway error: ref=%s, error=%v", req.ClientReferenceID, err)
		if errors.Is(err, yoco.ErrUpstream) || errors.Is(err, yoco.ErrInvalidResponse) {
			return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		return nil, fmt.Errorf("%w: CreateCheckout - gateway error: %v", ErrInternal, err)
	}

	// 5. Запоминаем ссылку для webhook и страницы статуса
	s.saveReference(ctx, req.ClientReferenceID, domain.PaymentStatusCreated, checkout.ID)

	return &models.CreateCheckoutResponse{ID: checkout.ID, RedirectURL: checkout.RedirectURL}, nil
}

// HandleWebhook обновляет статус ссылки по событию Yoco и при успехе отправляет письма.
// Событие без распознанной ссылки игнорируется.
func (s *Service) HandleWebhook(ctx context.Context, event *models.WebhookEvent) (*models.WebhookResult, error) {
	data := event.Data

	// 1. Определяем ссылку
	reference := s.resolveReference(ctx, &data)
	if reference == "" {
		s.logger.Warn("HandleWebhook: reference not resolved: type=%s, id=%s", event.Type, data.ID)
		return &models.WebhookResult{Status: domain.PaymentStatusUnknown}, nil
	}

	// 2. Определяем статус
	status := webhookStatus(event.Type, data.Status)

	// 3. Сохраняем
	checkoutID := data.ID
	if checkoutID == "" {
		checkoutID = data.CheckoutID
	}
	if existing, err := s.repo.Get(ctx, reference); err == nil && existing.CheckoutID != "" {
		checkoutID = existing.CheckoutID
	}

	ref := &domain.PaymentReference{
		Reference:  reference,
		Status:     status,
		CheckoutID: checkoutID,
		UpdatedAt:  s.timeProvider.Now().UTC(),
	}
	if err := s.repo.Save(ctx, ref); err != nil {
		s.logger.Error("HandleWebhook: failed to save reference: ref=%s, error=%v", reference, err)
		return nil, fmt.Errorf("%w: HandleWebhook - repository error: %v", ErrInternal, err)
	}
	s.metrics.PaymentStatus(string(status))

	s.logger.Info("HandleWebhook: ref=%s, type=%s, status=%s", reference, event.Type, status)

	result := &models.WebhookResult{Reference: reference, Status: status}

	// 4. Письма после успешной оплаты
	if status == domain.PaymentStatusSucceeded && data.Metadata != nil {
		result.Notified = s.notifyPaid(ctx, reference, data.Metadata)
	}

	return result, nil
}

// GetStatus возвращает последний известный статус ссылки
func (s *Service) GetStatus(ctx context.Context, reference string) (*domain.PaymentReference, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrReferenceNotFound
	}

	ref, err := s.repo.Get(ctx, reference)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrReferenceNotFound) {
			return nil, ErrReferenceNotFound
		}
		s.logger.Error("GetStatus: repository error: ref=%s, error=%v", reference, err)
		return nil, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	return ref, nil
}

func (s *Service) saveReference(ctx context.Context, reference string, status domain.PaymentStatus, checkoutID string) {
	if reference == "" {
		return
	}

	err := s.repo.Save(ctx, &domain.PaymentReference{
		Reference:  reference,
		Status:     status,
		CheckoutID: checkoutID,
		UpdatedAt:  s.timeProvider.Now().UTC(),
	})
	if err != nil {
		// checkout уже создан, клиент должен получить адрес оплаты
		s.logger.Error("CreateCheckout: failed to save reference: ref=%s, error=%v", reference, err)
		return
	}
	s.metrics.PaymentStatus(string(status))
}

func (s *Service) resolveReference(ctx context.Context, data *models.WebhookData) string {
	if ref := metaString(data.Metadata, "clientReferenceId"); ref != "" {
		return ref
	}
	if data.ClientReferenceID != "" {
		return data.ClientReferenceID
	}

	checkoutID := data.ID
	if checkoutID == "" {
		checkoutID = data.CheckoutID
	}
	if checkoutID == "" {
		return ""
	}

	ref, err := s.repo.FindByCheckoutID(ctx, checkoutID)
	if err != nil {
		if !errors.Is(err, paymentRepo.ErrReferenceNotFound) {
			s.logger.Error("HandleWebhook: lookup by checkout id=%s failed: %v", checkoutID, err)
		}
		return ""
	}
	return ref.Reference
}

func (s *Service) notifyPaid(ctx context.Context, reference string, metadata map[string]interface{}) bool {
	details := notifications.PaymentDetails{
		Reference:  reference,
		Name:       metaString(metadata, "name"),
		Email:      metaString(metadata, "email"),
		Route:      metaString(metadata, "route"),
		Date:       metaString(metadata, "date"),
		Time:       metaString(metadata, "time"),
		Passengers: metaInt(metadata, "passengers"),
	}

	notified := false

	if details.Email != "" {
		msg, err := notifications.PaymentConfirmedMessage(details)
		if err != nil {
			s.logger.Error("HandleWebhook: failed to render customer mail: ref=%s, error=%v", reference, err)
		} else {
			notified = s.notifier.Send(ctx, []string{details.Email}, []string{s.cfg.ClientEmail}, msg.Subject, msg.HTML)
		}
	}

	if s.cfg.AdminEmail != "" {
		msg, err := notifications.PaymentAdminMessage(details)
		if err != nil {
			s.logger.Error("HandleWebhook: failed to render admin mail: ref=%s, error=%v", reference, err)
		} else {
			s.notifier.Send(ctx, []string{s.cfg.AdminEmail}, nil, msg.Subject, msg.HTML)
		}
	}

	return notified
}

func webhookStatus(eventType, dataStatus string) domain.PaymentStatus {
	switch eventType {
	case "payment.succeeded":
		return domain.PaymentStatusSucceeded
	case "payment.failed":
		return domain.PaymentStatusFailed
	}

	switch strings.ToLower(dataStatus) {
	case "succeeded", "success":
		return domain.PaymentStatusSucceeded
	case "failed", "declined":
		return domain.PaymentStatusFailed
	default:
		return domain.PaymentStatusUnknown
	}
}

func metaString(m map[string]interface{}, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func metaInt(m map[string]interface{}, key string) int {
	switch t := m[key].(type) {
	case float64:
		return int(t)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(t))
		return n
	default:
		return 0
	}
}

func normalizeSiteURL(u string) string {
	u = strings.Trim(strings.TrimSpace(u), "`'\"")
	return strings.TrimSuffix(u, "/")
}
