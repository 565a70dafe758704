package contract

import (
	"context"

	"speedpress-addons-be/internal/entity"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	// GetMeta returns the counter stored under key, zero when absent.
	GetMeta(ctx context.Context, id uuid.UUID, key string) (int64, error)
	// IncrementMeta atomically adds delta to the counter stored under key,
	// creating the row when absent.
	IncrementMeta(ctx context.Context, id uuid.UUID, key string, delta int64) error
}
