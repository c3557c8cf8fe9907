package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/availability"
	"github.com/m04kA/SMC-ShuttleService/internal/service/availability/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/logger"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) BlockDate(ctx context.Context, date string) error {
	return m.Called(ctx, date).Error(0)
}

func (m *MockRepository) UnblockDate(ctx context.Context, date string) error {
	return m.Called(ctx, date).Error(0)
}

func (m *MockRepository) UnblockAllDates(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRepository) BlockSlot(ctx context.Context, slot domain.BlockedSlot) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *MockRepository) UnblockSlot(ctx context.Context, slot domain.BlockedSlot) error {
	return m.Called(ctx, slot).Error(0)
}

func (m *MockRepository) ListBlocked(ctx context.Context) ([]string, []domain.BlockedSlot, error) {
	args := m.Called(ctx)
	dates, _ := args.Get(0).([]string)
	slots, _ := args.Get(1).([]domain.BlockedSlot)
	return dates, slots, args.Error(2)
}

func TestService_BlockDateTrims(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, logger.Nop())

	repo.On("BlockDate", ctx, "2025-06-01").Return(nil)

	require.NoError(t, svc.BlockDate(ctx, "2025-06-01T00:00:00.000Z"))
	repo.AssertExpectations(t)
}

func TestService_BlockDateMissing(t *testing.T) {
	svc := NewService(new(MockRepository), logger.Nop())

	err := svc.BlockDate(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_MalformedDateStoredAsGiven(t *testing.T) {
	ctx := context.Background()
	svc := NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())

	require.NoError(t, svc.BlockDate(ctx, "not-a-date"))

	list, err := svc.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"not-a-date"}, list.Dates)
}

func TestService_BlockSlotValidation(t *testing.T) {
	svc := NewService(new(MockRepository), logger.Nop())

	err := svc.BlockSlot(context.Background(), &models.SlotRequest{Date: "2025-06-01", Time: "6:00 AM"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, logger.Nop())

	repo.On("UnblockAllDates", ctx).Return(errors.New("db down"))

	err := svc.UnblockAllDates(ctx)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_BlockUnblockScenario(t *testing.T) {
	ctx := context.Background()
	svc := NewService(availabilityRepo.NewMemoryRepository(), logger.Nop())

	require.NoError(t, svc.BlockDate(ctx, "2025-06-01"))
	list, err := svc.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Contains(t, list.Dates, "2025-06-01")

	require.NoError(t, svc.UnblockAllDates(ctx))
	list, err = svc.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Dates)
}

func TestBlockedList_IsSlotBlocked(t *testing.T) {
	list := &models.BlockedList{
		Dates: []string{"2025-06-01"},
		Slots: []domain.BlockedSlot{{Date: "2025-06-02", Route: domain.RouteQueenstownToKingPhalo, Time: "6:00 AM"}},
	}

	assert.True(t, list.IsSlotBlocked("2025-06-01", domain.RouteMthathaToKingPhalo, "4:00 AM"))
	assert.True(t, list.IsSlotBlocked("2025-06-02", domain.RouteQueenstownToKingPhalo, "6:00 AM"))
	assert.False(t, list.IsSlotBlocked("2025-06-02", domain.RouteKingPhaloToQueenstown, "3:00 PM"))
}
