package payment

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// MemoryRepository статусы платежей в памяти процесса
type MemoryRepository struct {
	mu         sync.RWMutex
	references map[string]domain.PaymentReference
	checkouts  map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		references: make(map[string]domain.PaymentReference),
		checkouts:  make(map[string]string),
	}
}

// Save перезаписывает запись по ссылке
func (r *MemoryRepository) Save(_ context.Context, ref *domain.PaymentReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.references[ref.Reference] = *ref
	if ref.CheckoutID != "" {
		r.checkouts[ref.CheckoutID] = ref.Reference
	}
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, reference string) (*domain.PaymentReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ref, ok := r.references[reference]
	if !ok {
		return nil, ErrReferenceNotFound
	}
	return &ref, nil
}

func (r *MemoryRepository) FindByCheckoutID(_ context.Context, checkoutID string) (*domain.PaymentReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reference, ok := r.checkouts[checkoutID]
	if !ok {
		return nil, ErrReferenceNotFound
	}

	ref, ok := r.references[reference]
	if !ok {
		return nil, ErrReferenceNotFound
	}
	return &ref, nil
}
