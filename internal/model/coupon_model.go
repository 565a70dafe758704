package model

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	DiscountType string    `gorm:"type:varchar(20);not null;default:'fixed'"` // fixed, percent
	Amount       float64   `gorm:"not null"`
	Active       bool      `gorm:"default:true"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Coupon) TableName() string {
	return "coupons"
}
