package push_calendar_blocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/graph"
	availabilityService "github.com/m04kA/SMC-ShuttleService/internal/service/availability"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockGraph struct {
	mock.Mock
}

func (m *MockGraph) Configured() bool {
	return m.Called().Bool(0)
}

func (m *MockGraph) CreateEvent(ctx context.Context, upn string, ev *graph.NewEvent) (string, error) {
	args := m.Called(ctx, upn, ev)
	return args.String(0), args.Error(1)
}

var testConfig = Config{TimeZone: "South Africa Standard Time", Subject: "Shuttle Unavailable"}

func seedBlocked(t *testing.T) *availabilityService.Service {
	t.Helper()
	ctx := context.Background()
	svc := availabilityService.NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())

	for _, s := range []availabilityModels.SlotRequest{
		{Date: "2025-06-01", Route: domain.RouteQueenstownToKingPhalo, Time: "6:00 AM"},
		{Date: "2025-06-01", Route: domain.RouteMthathaToKingPhalo, Time: "6:00 AM"},
		{Date: "2025-06-01", Route: domain.RouteKingPhaloToMthatha, Time: "2:30 PM"},
		{Date: "2025-06-02", Route: domain.RouteKingPhaloToQueenstown, Time: "3:00 PM"},
	} {
		s := s
		require.NoError(t, svc.BlockSlot(ctx, &s))
	}
	require.NoError(t, svc.BlockDate(ctx, "2025-06-01"))
	return svc
}

func TestUseCase_PushesSlotsAndWholeDate(t *testing.T) {
	ctx := context.Background()
	cal := new(MockGraph)
	cal.On("Configured").Return(true)

	var events []*graph.NewEvent
	cal.On("CreateEvent", ctx, "ops@example.com", mock.Anything).
		Run(func(args mock.Arguments) { events = append(events, args.Get(2).(*graph.NewEvent)) }).
		Return("ev", nil)

	uc := NewUseCase(seedBlocked(t), cal, testConfig, logger.Nop())
	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01T09:00:00Z", UPN: "ops@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", resp.Date)
	assert.Zero(t, resp.Failed)
	require.Len(t, resp.Created, 3)

	times := make([]string, 0, len(resp.Created))
	for _, c := range resp.Created {
		times = append(times, c.Time)
	}
	assert.ElementsMatch(t, []string{"06:00", "14:30", AllDay}, times)

	require.Len(t, events, 3)
	for _, ev := range events {
		assert.Equal(t, "busy", ev.ShowAs)
		assert.Equal(t, "South Africa Standard Time", ev.Start.TimeZone)
		if ev.IsAllDay {
			assert.Equal(t, "Shuttle Unavailable (All Day)", ev.Subject)
			assert.Equal(t, "2025-06-01T00:00:00", ev.Start.DateTime)
			assert.Equal(t, "2025-06-02T00:00:00", ev.End.DateTime)
			continue
		}
		assert.Equal(t, "Shuttle Unavailable", ev.Subject)
		if ev.Start.DateTime == "2025-06-01T14:30:00" {
			assert.Equal(t, "2025-06-01T15:30:00", ev.End.DateTime)
		}
	}
}

func TestUseCase_FailedEventsAreCounted(t *testing.T) {
	ctx := context.Background()
	cal := new(MockGraph)
	cal.On("Configured").Return(true)
	cal.On("CreateEvent", ctx, "", mock.Anything).Return("", errors.New("throttled"))

	uc := NewUseCase(seedBlocked(t), cal, testConfig, logger.Nop())
	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-02"})
	require.NoError(t, err)

	assert.Empty(t, resp.Created)
	assert.Equal(t, 1, resp.Failed)
}

func TestUseCase_Errors(t *testing.T) {
	ctx := context.Background()

	notConfigured := new(MockGraph)
	notConfigured.On("Configured").Return(false)
	_, err := NewUseCase(seedBlocked(t), notConfigured, testConfig, logger.Nop()).Execute(ctx, &Request{Date: "2025-06-01"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	noMailbox := new(MockGraph)
	noMailbox.On("Configured").Return(true)
	noMailbox.On("CreateEvent", ctx, "", mock.Anything).Return("", graph.ErrNotConfigured)
	_, err = NewUseCase(seedBlocked(t), noMailbox, testConfig, logger.Nop()).Execute(ctx, &Request{Date: "2025-06-01"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	configured := new(MockGraph)
	configured.On("Configured").Return(true)
	_, err = NewUseCase(seedBlocked(t), configured, testConfig, logger.Nop()).Execute(ctx, &Request{Date: ""})
	assert.ErrorIs(t, err, ErrInvalidInput)
	configured.AssertNotCalled(t, "CreateEvent", mock.Anything, mock.Anything, mock.Anything)
}
