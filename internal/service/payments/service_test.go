package payments

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/yoco"
	"github.com/m04kA/SMC-ShuttleService/internal/service/payments/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockGateway struct {
	mock.Mock
	configured bool
}

func (m *MockGateway) Configured() bool { return m.configured }

func (m *MockGateway) CreateCheckout(ctx context.Context, checkout *yoco.CheckoutRequest) (*yoco.Checkout, error) {
	args := m.Called(ctx, checkout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*yoco.Checkout), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, cc []string, subject, html string) bool {
	return m.Called(ctx, to, cc, subject, html).Bool(0)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var testNow = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

func newTestService(cfg Config, gateway *MockGateway, notifier *MockNotifier) (*Service, *paymentRepo.MemoryRepository) {
	repo := paymentRepo.NewMemoryRepository()
	svc := NewService(cfg, repo, gateway, notifier, nil, logger.Nop())
	svc.timeProvider = fixedTime{t: testNow}
	return svc, repo
}

func TestService_CreateCheckout(t *testing.T) {
	ctx := context.Background()
	gateway := &MockGateway{configured: true}
	gateway.On("CreateCheckout", ctx, mock.MatchedBy(func(c *yoco.CheckoutRequest) bool {
		return c.Amount == 65000 &&
			c.Currency == "ZAR" &&
			c.ClientReferenceID == "REF 1" &&
			c.Metadata["clientReferenceId"] == "REF 1" &&
			c.Metadata["route"] == "Mthatha_to_KingPhalo" &&
			c.SuccessURL == "https://shuttle.example.com/payment/success?ref=REF+1" &&
			c.CancelURL == "https://shuttle.example.com/payment/cancel" &&
			c.FailureURL == "https://shuttle.example.com/payment/failure"
	})).Return(&yoco.Checkout{ID: "ch_1", RedirectURL: "https://pay.yoco.com/ch_1"}, nil)

	svc, repo := newTestService(Config{SiteURL: "https://shuttle.example.com/"}, gateway, &MockNotifier{})

	resp, err := svc.CreateCheckout(ctx, &models.CreateCheckoutRequest{
		Amount:            65000,
		Metadata:          map[string]interface{}{"route": "Mthatha_to_KingPhalo"},
		ClientReferenceID: "REF 1",
	})
	require.NoError(t, err)
	assert.Equal(t, &models.CreateCheckoutResponse{ID: "ch_1", RedirectURL: "https://pay.yoco.com/ch_1"}, resp)

	stored, err := repo.Get(ctx, "REF 1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCreated, stored.Status)
	assert.Equal(t, "ch_1", stored.CheckoutID)
	gateway.AssertExpectations(t)
}

func TestService_CreateCheckoutInvalidAmount(t *testing.T) {
	svc, _ := newTestService(Config{}, &MockGateway{configured: true}, &MockNotifier{})

	for _, amount := range []float64{0, -100, math.NaN(), math.Inf(1)} {
		t.Run(fmt.Sprint(amount), func(t *testing.T) {
			_, err := svc.CreateCheckout(context.Background(), &models.CreateCheckoutRequest{Amount: amount})
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

func TestService_CreateCheckoutNotConfigured(t *testing.T) {
	svc, _ := newTestService(Config{}, &MockGateway{}, &MockNotifier{})

	_, err := svc.CreateCheckout(context.Background(), &models.CreateCheckoutRequest{Amount: 100})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestService_CreateCheckoutTestMode(t *testing.T) {
	ctx := context.Background()
	gateway := &MockGateway{}
	svc, repo := newTestService(Config{SiteURL: "http://localhost:8080", TestMode: true}, gateway, &MockNotifier{})

	resp, err := svc.CreateCheckout(ctx, &models.CreateCheckoutRequest{Amount: 28000, ClientReferenceID: "REF-2"})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("test_%d", testNow.UnixMilli()), resp.ID)
	assert.Equal(t, "http://localhost:8080/payment/success?ref=REF-2", resp.RedirectURL)

	stored, err := repo.Get(ctx, "REF-2")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSucceeded, stored.Status)
	gateway.AssertNotCalled(t, "CreateCheckout", mock.Anything, mock.Anything)
}

func TestService_CreateCheckoutUpstreamError(t *testing.T) {
	ctx := context.Background()
	gateway := &MockGateway{configured: true}
	gateway.On("CreateCheckout", ctx, mock.Anything).
		Return(nil, fmt.Errorf("%w: unexpected status code 422: bad amount", yoco.ErrUpstream))

	svc, _ := newTestService(Config{}, gateway, &MockNotifier{})

	_, err := svc.CreateCheckout(ctx, &models.CreateCheckoutRequest{Amount: 100, ClientReferenceID: "R"})
	require.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "bad amount")
}

func TestService_HandleWebhookSucceeded(t *testing.T) {
	ctx := context.Background()
	notifier := &MockNotifier{}
	notifier.On("Send", ctx, []string{"ann@example.com"}, []string{"office@example.com"},
		"Booking confirmed: Mthatha_to_KingPhalo 2025-06-01 4:00 AM", mock.AnythingOfType("string")).Return(true)
	notifier.On("Send", ctx, []string{"admin@example.com"}, []string(nil),
		"Admin: Booking confirmed 2025-06-01 4:00 AM", mock.AnythingOfType("string")).Return(true)

	svc, repo := newTestService(Config{AdminEmail: "admin@example.com", ClientEmail: "office@example.com"},
		&MockGateway{configured: true}, notifier)

	result, err := svc.HandleWebhook(ctx, &models.WebhookEvent{
		Type: "payment.succeeded",
		Data: models.WebhookData{
			ID: "ch_1",
			Metadata: map[string]interface{}{
				"clientReferenceId": "REF-1",
				"email":             "ann@example.com",
				"name":              "Ann",
				"route":             "Mthatha_to_KingPhalo",
				"date":              "2025-06-01",
				"time":              "4:00 AM",
				"passengers":        float64(2),
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "REF-1", result.Reference)
	assert.Equal(t, domain.PaymentStatusSucceeded, result.Status)
	assert.True(t, result.Notified)

	stored, err := repo.Get(ctx, "REF-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusSucceeded, stored.Status)
	notifier.AssertExpectations(t)
}

func TestService_HandleWebhookLookupByCheckoutID(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(Config{}, &MockGateway{configured: true}, &MockNotifier{})
	require.NoError(t, repo.Save(ctx, &domain.PaymentReference{Reference: "REF-9", Status: domain.PaymentStatusCreated, CheckoutID: "ch_9"}))

	result, err := svc.HandleWebhook(ctx, &models.WebhookEvent{
		Type: "checkout.updated",
		Data: models.WebhookData{ID: "ch_9", Status: "Declined"},
	})
	require.NoError(t, err)

	assert.Equal(t, "REF-9", result.Reference)
	assert.Equal(t, domain.PaymentStatusFailed, result.Status)
	assert.False(t, result.Notified)

	stored, err := repo.Get(ctx, "REF-9")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, stored.Status)
	assert.Equal(t, "ch_9", stored.CheckoutID)
}

func TestService_HandleWebhookUnresolved(t *testing.T) {
	svc, _ := newTestService(Config{}, &MockGateway{}, &MockNotifier{})

	result, err := svc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Type: "payment.succeeded",
		Data: models.WebhookData{ID: "ch_unknown"},
	})
	require.NoError(t, err)
	assert.Empty(t, result.Reference)
	assert.Equal(t, domain.PaymentStatusUnknown, result.Status)
}

func TestWebhookStatus(t *testing.T) {
	tests := []struct {
		eventType string
		status    string
		want      domain.PaymentStatus
	}{
		{"payment.succeeded", "", domain.PaymentStatusSucceeded},
		{"payment.failed", "succeeded", domain.PaymentStatusFailed},
		{"", "success", domain.PaymentStatusSucceeded},
		{"", "FAILED", domain.PaymentStatusFailed},
		{"", "declined", domain.PaymentStatusFailed},
		{"checkout.updated", "pending", domain.PaymentStatusUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, webhookStatus(tt.eventType, tt.status), "type=%q status=%q", tt.eventType, tt.status)
	}
}

func TestService_GetStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService(Config{}, &MockGateway{}, &MockNotifier{})
	require.NoError(t, repo.Save(ctx, &domain.PaymentReference{Reference: "REF-1", Status: domain.PaymentStatusCreated}))

	ref, err := svc.GetStatus(ctx, "REF-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusCreated, ref.Status)

	_, err = svc.GetStatus(ctx, "missing")
	assert.ErrorIs(t, err, ErrReferenceNotFound)

	_, err = svc.GetStatus(ctx, " ")
	assert.ErrorIs(t, err, ErrReferenceNotFound)
}
