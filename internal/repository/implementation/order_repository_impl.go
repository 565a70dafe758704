package implementation

import (
	"context"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/mapper"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.OrderMapper
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{
		db:     db,
		mapper: mapper.NewOrderMapper(),
	}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	m := r.mapper.ToModel(order)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*order = *r.mapper.ToEntity(m)
	return nil
}

func (r *OrderRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Order, error) {
	var models []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, r.mapper.ToEntity(m))
	}
	return orders, nil
}
