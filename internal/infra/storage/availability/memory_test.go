package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

func TestMemoryRepository_BlockDateIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	require.NoError(t, repo.BlockDate(ctx, "2025-06-01"))
	require.NoError(t, repo.BlockDate(ctx, "2025-06-01"))
	require.NoError(t, repo.BlockDate(ctx, "2025-05-30"))

	dates, slots, err := repo.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-05-30", "2025-06-01"}, dates)
	assert.Empty(t, slots)
}

func TestMemoryRepository_UnblockAbsentDate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	assert.NoError(t, repo.UnblockDate(ctx, "2025-06-01"))
}

func TestMemoryRepository_UnblockAllDates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	slot := domain.BlockedSlot{Date: "2025-06-01", Route: domain.RouteQueenstownToKingPhalo, Time: "6:00 AM"}

	require.NoError(t, repo.BlockDate(ctx, "2025-06-01"))
	require.NoError(t, repo.BlockDate(ctx, "2025-06-02"))
	require.NoError(t, repo.BlockSlot(ctx, slot))
	require.NoError(t, repo.UnblockAllDates(ctx))

	dates, slots, err := repo.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, dates)
	// слоты не затрагиваются
	assert.Equal(t, []domain.BlockedSlot{slot}, slots)
}

func TestMemoryRepository_SlotsIndependent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()
	a := domain.BlockedSlot{Date: "2025-06-01", Route: domain.RouteQueenstownToKingPhalo, Time: "6:00 AM"}
	b := domain.BlockedSlot{Date: "2025-06-01", Route: domain.RouteKingPhaloToQueenstown, Time: "3:00 PM"}

	require.NoError(t, repo.BlockSlot(ctx, a))
	require.NoError(t, repo.BlockSlot(ctx, b))
	require.NoError(t, repo.BlockSlot(ctx, a))
	require.NoError(t, repo.UnblockSlot(ctx, a))

	_, slots, err := repo.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.BlockedSlot{b}, slots)

	require.NoError(t, repo.UnblockSlot(ctx, b))
	_, slots, err = repo.ListBlocked(ctx)
	require.NoError(t, err)
	assert.Empty(t, slots)
}
