package entity

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Status          string
	BillingCountry  string
	ShippingCountry string
	Subtotal        float64
	Discount        float64
	Total           float64
	Items           []OrderItem
	CreatedAt       time.Time
}

type OrderItem struct {
	ProductId uuid.UUID
	Name      string
	UnitPrice float64
	Quantity  int
}
