package contract

import (
	"context"

	"github.com/google/uuid"
)

type WishlistRepository interface {
	Has(ctx context.Context, userId, productId uuid.UUID) (bool, error)
	Add(ctx context.Context, userId, productId uuid.UUID) error
	Remove(ctx context.Context, userId, productId uuid.UUID) error
	FindProductIds(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error)
}
