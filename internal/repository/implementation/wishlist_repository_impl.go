package implementation

import (
	"context"

	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WishlistRepositoryImpl struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) contract.WishlistRepository {
	return &WishlistRepositoryImpl{db: db}
}

func (r *WishlistRepositoryImpl) Has(ctx context.Context, userId, productId uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userId, productId).
		Count(&count).Error
	return count > 0, err
}

func (r *WishlistRepositoryImpl) Add(ctx context.Context, userId, productId uuid.UUID) error {
	m := &model.WishlistItem{UserId: userId, ProductId: productId}
	// Adding twice is a no-op.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(m).Error
}

func (r *WishlistRepositoryImpl) Remove(ctx context.Context, userId, productId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userId, productId).
		Delete(&model.WishlistItem{}).Error
}

func (r *WishlistRepositoryImpl) FindProductIds(ctx context.Context, userId uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.WishlistItem{}).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
