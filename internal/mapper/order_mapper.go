package mapper

import (
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(mdl *model.Order) *entity.Order {
	if mdl == nil {
		return nil
	}
	items := make([]entity.OrderItem, 0, len(mdl.Items))
	for _, item := range mdl.Items {
		items = append(items, entity.OrderItem{
			ProductId: item.ProductId,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return &entity.Order{
		Id:              mdl.Id,
		UserId:          mdl.UserId,
		Status:          mdl.Status,
		BillingCountry:  mdl.BillingCountry,
		ShippingCountry: mdl.ShippingCountry,
		Subtotal:        mdl.Subtotal,
		Discount:        mdl.Discount,
		Total:           mdl.Total,
		Items:           items,
		CreatedAt:       mdl.CreatedAt,
	}
}

func (m *OrderMapper) ToModel(ent *entity.Order) *model.Order {
	if ent == nil {
		return nil
	}
	items := make([]model.OrderItem, 0, len(ent.Items))
	for _, item := range ent.Items {
		items = append(items, model.OrderItem{
			OrderId:   ent.Id,
			ProductId: item.ProductId,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return &model.Order{
		Id:              ent.Id,
		UserId:          ent.UserId,
		Status:          ent.Status,
		BillingCountry:  ent.BillingCountry,
		ShippingCountry: ent.ShippingCountry,
		Subtotal:        ent.Subtotal,
		Discount:        ent.Discount,
		Total:           ent.Total,
		Items:           items,
		CreatedAt:       ent.CreatedAt,
	}
}
