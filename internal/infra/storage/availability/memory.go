package availability

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// MemoryRepository хранит заблокированные даты и слоты в памяти процесса
type MemoryRepository struct {
	mu    sync.RWMutex
	dates map[string]struct{}
	slots map[string]domain.BlockedSlot
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		dates: make(map[string]struct{}),
		slots: make(map[string]domain.BlockedSlot),
	}
}

func (r *MemoryRepository) BlockDate(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dates[date] = struct{}{}
	return nil
}

func (r *MemoryRepository) UnblockDate(_ context.Context, date string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.dates, date)
	return nil
}

func (r *MemoryRepository) UnblockAllDates(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.dates = make(map[string]struct{})
	return nil
}

func (r *MemoryRepository) BlockSlot(_ context.Context, slot domain.BlockedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.slots[slot.Key()] = slot
	return nil
}

func (r *MemoryRepository) UnblockSlot(_ context.Context, slot domain.BlockedSlot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.slots, slot.Key())
	return nil
}

// ListBlocked возвращает даты по возрастанию и слоты, упорядоченные по ключу
func (r *MemoryRepository) ListBlocked(_ context.Context) ([]string, []domain.BlockedSlot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dates := make([]string, 0, len(r.dates))
	for d := range r.dates {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	keys := make([]string, 0, len(r.slots))
	for k := range r.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	slots := make([]domain.BlockedSlot, 0, len(keys))
	for _, k := range keys {
		slots = append(slots, r.slots[k])
	}

	return dates, slots, nil
}
