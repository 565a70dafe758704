package mapper

import (
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
)

type CouponMapper struct{}

func NewCouponMapper() *CouponMapper {
	return &CouponMapper{}
}

func (m *CouponMapper) ToEntity(model *model.Coupon) *entity.Coupon {
	if model == nil {
		return nil
	}
	return &entity.Coupon{
		Id:           model.Id,
		Code:         model.Code,
		DiscountType: entity.DiscountType(model.DiscountType),
		Amount:       model.Amount,
		Active:       model.Active,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *CouponMapper) ToModel(entity *entity.Coupon) *model.Coupon {
	if entity == nil {
		return nil
	}
	return &model.Coupon{
		Id:           entity.Id,
		Code:         entity.Code,
		DiscountType: string(entity.DiscountType),
		Amount:       entity.Amount,
		Active:       entity.Active,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
