package demand

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

type entry struct {
	aggregate domain.DemandAggregate
	requests  []*domain.DemandRequest
}

// MemoryRepository агрегатор заявок в памяти процесса
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// NewMemoryRepository создает пустое хранилище заявок
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{entries: make(map[string]*entry)}
}

// Add прибавляет пассажиров к ключу и сохраняет заявку.
// Новый ключ создается со статусом pending, статус существующего не меняется.
func (r *MemoryRepository) Add(_ context.Context, req *domain.DemandRequest) (*domain.DemandAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := req.Key().String()
	e, ok := r.entries[key]
	if !ok {
		e = &entry{aggregate: domain.DemandAggregate{
			Date:   req.Date,
			Time:   req.Time,
			Status: domain.DemandStatusPending,
		}}
		r.entries[key] = e
	}

	stored := *req
	e.aggregate.Count += req.Passengers
	e.requests = append(e.requests, &stored)

	agg := e.aggregate
	return &agg, nil
}

func (r *MemoryRepository) Get(_ context.Context, key domain.DemandKey) (*domain.DemandAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key.String()]
	if !ok {
		return nil, ErrKeyNotFound
	}

	agg := e.aggregate
	return &agg, nil
}

// List возвращает все ключи, пустая date означает без фильтра. Порядок не гарантируется.
func (r *MemoryRepository) List(_ context.Context, date string) ([]*domain.DemandAggregate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.DemandAggregate, 0, len(r.entries))
	for _, e := range r.entries {
		if date != "" && e.aggregate.Date != date {
			continue
		}
		agg := e.aggregate
		result = append(result, &agg)
	}

	return result, nil
}

// Resolve переводит ключ из pending в итоговый статус.
// Повторная установка того же статуса возвращает changed=false без ошибки.
func (r *MemoryRepository) Resolve(_ context.Context, key domain.DemandKey, status domain.DemandStatus) (*domain.DemandAggregate, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key.String()]
	if !ok {
		return nil, false, ErrKeyNotFound
	}

	switch e.aggregate.Status {
	case domain.DemandStatusPending:
		e.aggregate.Status = status
		agg := e.aggregate
		return &agg, true, nil
	case status:
		agg := e.aggregate
		return &agg, false, nil
	default:
		agg := e.aggregate
		return &agg, false, ErrAlreadyResolved
	}
}

// Requests возвращает заявки ключа в порядке поступления
func (r *MemoryRepository) Requests(_ context.Context, key domain.DemandKey) ([]*domain.DemandRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key.String()]
	if !ok {
		return nil, ErrKeyNotFound
	}

	result := make([]*domain.DemandRequest, len(e.requests))
	for i, req := range e.requests {
		c := *req
		result[i] = &c
	}

	return result, nil
}
