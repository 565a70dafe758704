package model

import (
	"time"

	"github.com/google/uuid"
)

type Product struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Price         float64   `gorm:"not null"`
	StockQuantity int       `gorm:"default:0"`
	ManageStock   bool      `gorm:"default:true"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
