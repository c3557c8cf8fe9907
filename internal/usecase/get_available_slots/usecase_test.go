package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityModels "github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
	demandModels "github.com/m04kA/SMC-ShuttleService/internal/service/demand/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) ListBlocked(ctx context.Context) (*availabilityModels.BlockedList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availabilityModels.BlockedList), args.Error(1)
}

type MockRoutes struct {
	mock.Mock
}

func (m *MockRoutes) IsOfferable(ctx context.Context, route domain.RouteID) (bool, error) {
	args := m.Called(ctx, route)
	return args.Bool(0), args.Error(1)
}

type MockDemand struct {
	mock.Mock
}

func (m *MockDemand) Stats(ctx context.Context, date, time string) (*demandModels.StatsResponse, error) {
	args := m.Called(ctx, date, time)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*demandModels.StatsResponse), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

func newTestUseCase(now time.Time) (*UseCase, *MockAvailability, *MockRoutes, *MockDemand) {
	availability := new(MockAvailability)
	routes := new(MockRoutes)
	demand := new(MockDemand)
	uc := NewUseCase(availability, routes, demand, logger.Nop())
	uc.timeProvider = fixedTime{t: now}
	return uc, availability, routes, demand
}

func TestUseCase_RegularRoute(t *testing.T) {
	ctx := context.Background()
	uc, availability, routes, demand := newTestUseCase(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))

	availability.On("ListBlocked", ctx).Return(&availabilityModels.BlockedList{
		Dates: []string{"2025-06-02"},
		Slots: []domain.BlockedSlot{
			{Date: "2025-06-01", Route: domain.RouteMthathaToKingPhalo, Time: "11:00 AM"},
			{Date: "2025-06-01", Route: domain.RouteKingPhaloToMthatha, Time: "4:00 AM"},
		},
	}, nil)
	routes.On("IsOfferable", ctx, domain.RouteMthathaToKingPhalo).Return(true, nil)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01T00:00:00Z", Route: domain.RouteMthathaToKingPhalo})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", resp.Date)
	assert.False(t, resp.DemandGated)
	assert.True(t, resp.Offerable)
	assert.False(t, resp.DateBlocked)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, Slot{Time: "4:00 AM"}, resp.Slots[0])
	assert.Equal(t, Slot{Time: "11:00 AM", Blocked: true}, resp.Slots[1])
	demand.AssertNotCalled(t, "Stats", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_BlockedDateBlocksAllSlots(t *testing.T) {
	ctx := context.Background()
	uc, availability, routes, _ := newTestUseCase(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))

	availability.On("ListBlocked", ctx).Return(&availabilityModels.BlockedList{Dates: []string{"2025-06-02"}}, nil)
	routes.On("IsOfferable", ctx, domain.RouteKingPhaloToMthatha).Return(true, nil)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-02", Route: domain.RouteKingPhaloToMthatha})
	require.NoError(t, err)

	assert.True(t, resp.DateBlocked)
	for _, s := range resp.Slots {
		assert.True(t, s.Blocked, s.Time)
		assert.False(t, s.Available())
	}
}

func TestUseCase_DemandRoute(t *testing.T) {
	ctx := context.Background()
	uc, availability, routes, demand := newTestUseCase(time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC))

	availability.On("ListBlocked", ctx).Return(&availabilityModels.BlockedList{}, nil)
	routes.On("IsOfferable", ctx, domain.RouteQueenstownToKingPhalo).Return(false, nil)
	demand.On("Stats", ctx, "2025-06-01", "6:00 AM").Return(&demandModels.StatsResponse{
		Count: 4, Threshold: 6, Status: domain.DemandStatusPending,
	}, nil)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Route: domain.RouteQueenstownToKingPhalo})
	require.NoError(t, err)

	assert.True(t, resp.DemandGated)
	assert.False(t, resp.Offerable)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, &Demand{Count: 4, Threshold: 6, Status: domain.DemandStatusPending}, resp.Slots[0].Demand)
}

func TestUseCase_TodayMarksDeparted(t *testing.T) {
	ctx := context.Background()
	uc, availability, routes, _ := newTestUseCase(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	availability.On("ListBlocked", ctx).Return(&availabilityModels.BlockedList{}, nil)
	routes.On("IsOfferable", ctx, domain.RouteMthathaToKingPhalo).Return(true, nil)

	resp, err := uc.Execute(ctx, &Request{Date: "2025-06-01", Route: domain.RouteMthathaToKingPhalo})
	require.NoError(t, err)

	assert.True(t, resp.Slots[0].Departed)
	assert.False(t, resp.Slots[1].Departed)
	assert.True(t, resp.Slots[1].Available())
}

func TestUseCase_Validation(t *testing.T) {
	uc, _, _, _ := newTestUseCase(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"missing date", &Request{Route: domain.RouteMthathaToKingPhalo}, ErrInvalidInput},
		{"unknown route", &Request{Date: "2025-06-01", Route: "Nowhere"}, ErrUnknownRoute},
		{"malformed date", &Request{Date: "01/06/2025", Route: domain.RouteMthathaToKingPhalo}, ErrInvalidDate},
		{"past date", &Request{Date: "2025-05-31", Route: domain.RouteMthathaToKingPhalo}, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
