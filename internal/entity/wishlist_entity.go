package entity

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	UserId    uuid.UUID
	ProductId uuid.UUID
	CreatedAt time.Time
}
