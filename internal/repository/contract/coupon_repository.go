package contract

import (
	"context"

	"speedpress-addons-be/internal/entity"
)

type CouponRepository interface {
	Create(ctx context.Context, coupon *entity.Coupon) error
	// FindByCode returns the active coupon for code, nil when unknown.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
}
