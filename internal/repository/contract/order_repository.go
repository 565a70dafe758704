package contract

import (
	"context"

	"speedpress-addons-be/internal/entity"

	"github.com/google/uuid"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Order, error)
}
