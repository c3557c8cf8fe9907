package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Repository статусы платежей в Redis
type Repository struct {
	client RedisClient
	ttl    time.Duration
}

// NewRepository создает хранилище поверх клиента go-redis, ttl=0 означает без истечения
func NewRepository(client RedisClient, ttl time.Duration) *Repository {
	return &Repository{client: client, ttl: ttl}
}

// Save сохраняет запись и индекс checkoutId -> reference
func (r *Repository) Save(ctx context.Context, ref *domain.PaymentReference) error {
	payload, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncoding, err)
	}

	if err := r.client.Set(ctx, referenceKey(ref.Reference), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set reference=%s: %v", ErrStorage, ref.Reference, err)
	}

	if ref.CheckoutID != "" {
		if err := r.client.Set(ctx, checkoutKey(ref.CheckoutID), ref.Reference, r.ttl).Err(); err != nil {
			return fmt.Errorf("%w: Save - set checkout=%s: %v", ErrStorage, ref.CheckoutID, err)
		}
	}

	return nil
}

func (r *Repository) Get(ctx context.Context, reference string) (*domain.PaymentReference, error) {
	data, err := r.client.Get(ctx, referenceKey(reference)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: Get - reference=%s: %v", ErrStorage, reference, err)
	}

	var ref domain.PaymentReference
	if err := json.Unmarshal(data, &ref); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal: %v", ErrEncoding, err)
	}
	return &ref, nil
}

func (r *Repository) FindByCheckoutID(ctx context.Context, checkoutID string) (*domain.PaymentReference, error) {
	reference, err := r.client.Get(ctx, checkoutKey(checkoutID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: FindByCheckoutID - checkout=%s: %v", ErrStorage, checkoutID, err)
	}

	return r.Get(ctx, reference)
}

func referenceKey(reference string) string {
	return fmt.Sprintf("payment:ref:%s", reference)
}

func checkoutKey(checkoutID string) string {
	return fmt.Sprintf("payment:checkout:%s", checkoutID)
}
