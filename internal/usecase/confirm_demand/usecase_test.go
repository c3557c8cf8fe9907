package confirm_demand

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	demandRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/demand"
	demandService "github.com/m04kA/SMC-ShuttleService/internal/service/demand"
	demandModels "github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, to, cc []string, subject, html string) bool {
	return m.Called(ctx, to, cc, subject, html).Bool(0)
}

func newDemand(t *testing.T) *demandService.Service {
	t.Helper()

	svc := demandService.NewService(demandRepo.NewMemoryRepository(), domain.DefaultDemandThreshold, nil, logger.Nop())
	for _, req := range []*demandModels.SubmitRequest{
		{Route: domain.RouteQueenstownToKingPhalo, Date: "2025-06-01", Time: "6:00 AM", Passengers: 3, Name: "Ann", Email: "ann@example.com", Phone: "082"},
		{Route: domain.RouteQueenstownToKingPhalo, Date: "2025-06-01", Time: "6:00 AM", Passengers: 4, Name: "Bob", Email: "bob@example.com", Phone: "083"},
	} {
		_, err := svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}
	return svc
}

func TestUseCase_ConfirmNotifiesRequesters(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	subject := "Booking confirmed: Queenstown shuttle 2025-06-01 6:00 AM"
	notifier.On("Send", ctx, []string{"ann@example.com"}, []string{"office@example.com"}, subject, mock.AnythingOfType("string")).Return(true)
	notifier.On("Send", ctx, []string{"bob@example.com"}, []string{"office@example.com"}, subject, mock.AnythingOfType("string")).Return(false)
	notifier.On("Send", ctx, []string{"admin@example.com"}, []string(nil), "Admin: Queenstown confirmed 2025-06-01 6:00 AM",
		mock.MatchedBy(func(html string) bool {
			return strings.Contains(html, "Ann &lt;ann@example.com&gt; — 3 pax") &&
				strings.Contains(html, "Bob &lt;bob@example.com&gt; — 4 pax")
		})).Return(true)

	uc := NewUseCase(newDemand(t), notifier, Config{AdminEmail: "admin@example.com", ClientEmail: "office@example.com"}, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Time: "6:00 AM"})
	require.NoError(t, err)

	assert.True(t, resp.Changed)
	assert.Equal(t, domain.DemandStatusConfirmed, resp.Aggregate.Status)
	assert.Equal(t, 7, resp.Aggregate.Count)
	assert.Equal(t, 1, resp.Notified)
	assert.True(t, resp.AdminNotified)
	notifier.AssertExpectations(t)
}

func TestUseCase_RepeatedConfirmDoesNotResend(t *testing.T) {
	ctx := context.Background()
	notifier := new(MockNotifier)
	notifier.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true)

	uc := NewUseCase(newDemand(t), notifier, Config{}, logger.Nop())

	_, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Time: "6:00 AM"})
	require.NoError(t, err)
	notifier.AssertNumberOfCalls(t, "Send", 2)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Time: "6:00 AM"})
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	notifier.AssertNumberOfCalls(t, "Send", 2)
}

func TestUseCase_UnknownKey(t *testing.T) {
	notifier := new(MockNotifier)
	uc := NewUseCase(newDemand(t), notifier, Config{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-06-01", Time: "3:00 PM"})

	assert.ErrorIs(t, err, ErrDemandNotFound)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_DeclinedKeyCannotBeConfirmed(t *testing.T) {
	ctx := context.Background()
	demand := newDemand(t)
	_, err := demand.Decline(ctx, "2025-06-01", "6:00 AM")
	require.NoError(t, err)

	uc := NewUseCase(demand, new(MockNotifier), Config{}, logger.Nop())

	_, err = uc.Execute(ctx, &Request{Date: "2025-06-01", Time: "6:00 AM"})
	assert.ErrorIs(t, err, ErrAlreadyResolved)
}
