package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Status          string    `gorm:"type:varchar(50);not null;default:'completed'"`
	BillingCountry  string    `gorm:"type:varchar(2)"`
	ShippingCountry string    `gorm:"type:varchar(2)"`
	Subtotal        float64   `gorm:"not null"`
	Discount        float64   `gorm:"default:0"`
	Total           float64   `gorm:"not null"`
	Items           []OrderItem
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement"`
	OrderId   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	UnitPrice float64   `gorm:"not null"`
	Quantity  int       `gorm:"not null"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
