package model

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wishlist_user_product"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}
