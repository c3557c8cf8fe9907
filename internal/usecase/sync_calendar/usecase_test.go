package sync_calendar

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
	"github.com/m04kA/SMC-ShuttleService/internal/integrations/ics"
	availabilityService "github.com/m04kA/SMC-ShuttleService/internal/service/availability"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockICS struct {
	mock.Mock
}

func (m *MockICS) BusyTimes(ctx context.Context, start, end string) ([]string, []ics.Event, error) {
	args := m.Called(ctx, start, end)
	times, _ := args.Get(0).([]string)
	return times, nil, args.Error(1)
}

type MockGraph struct {
	mock.Mock
}

func (m *MockGraph) BusyTimes(ctx context.Context, upn, start, end string) ([]string, []graph.Event, error) {
	args := m.Called(ctx, upn, start, end)
	times, _ := args.Get(0).([]string)
	return times, nil, args.Error(1)
}

func TestUseCase_SyncICS(t *testing.T) {
	ctx := context.Background()
	icsCal := new(MockICS)
	icsCal.On("BusyTimes", ctx, "2025-06-01", "2025-06-01").Return([]string{"06:00", "15:00"}, nil)

	availability := availabilityService.NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())
	uc := NewUseCase(icsCal, new(MockGraph), availability, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01"})
	require.NoError(t, err)

	assert.Equal(t, SourceICS, resp.Source)
	assert.Equal(t, []string{"6:00 AM", "3:00 PM"}, resp.Busy)
	assert.Equal(t, 4, resp.Synced)

	blocked, err := availability.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Len(t, blocked.Slots, 4)
	assert.True(t, blocked.IsSlotBlocked("2025-06-01", domain.RouteQueenstownToKingPhalo, "6:00 AM"))
	assert.True(t, blocked.IsSlotBlocked("2025-06-01", domain.RouteKingPhaloToQueenstown, "3:00 PM"))
	assert.False(t, blocked.IsSlotBlocked("2025-06-01", domain.RouteMthathaToKingPhalo, "6:00 AM"))
}

func TestUseCase_SyncGraph(t *testing.T) {
	ctx := context.Background()
	graphCal := new(MockGraph)
	graphCal.On("BusyTimes", ctx, "", "2025-06-01", "2025-06-01").Return([]string{}, nil)

	availability := availabilityService.NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())
	uc := NewUseCase(new(MockICS), graphCal, availability, logger.Nop())

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Source: "Graph"})
	require.NoError(t, err)

	assert.Equal(t, SourceGraph, resp.Source)
	assert.Zero(t, resp.Synced)
	assert.Empty(t, resp.Busy)
}

func TestUseCase_Errors(t *testing.T) {
	ctx := context.Background()
	icsCal := new(MockICS)
	icsCal.On("BusyTimes", ctx, "2025-06-01", "2025-06-01").Return(nil, errors.New("feed url is not configured"))

	availability := availabilityService.NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())
	uc := NewUseCase(icsCal, new(MockGraph), availability, logger.Nop())

	_, err := uc.Execute(ctx, &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{Date: "2025-06-01", Source: "outlook"})
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = uc.Execute(ctx, &Request{Date: "2025-06-01", Source: "ics"})
	assert.ErrorIs(t, err, ErrCalendarUnavailable)
}
