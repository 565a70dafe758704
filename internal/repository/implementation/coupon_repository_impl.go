package implementation

import (
	"context"
	"errors"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/mapper"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CouponRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CouponMapper
}

func NewCouponRepository(db *gorm.DB) contract.CouponRepository {
	return &CouponRepositoryImpl{
		db:     db,
		mapper: mapper.NewCouponMapper(),
	}
}

func (r *CouponRepositoryImpl) Create(ctx context.Context, coupon *entity.Coupon) error {
	m := r.mapper.ToModel(coupon)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*coupon = *r.mapper.ToEntity(m)
	return nil
}

func (r *CouponRepositoryImpl) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var m model.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? AND active = ?", code, true).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
