package entity

import (
	"time"

	"github.com/google/uuid"
)

type DiscountType string

const (
	DiscountFixed   DiscountType = "fixed"
	DiscountPercent DiscountType = "percent"
)

type Coupon struct {
	Id           uuid.UUID
	Code         string
	DiscountType DiscountType
	Amount       float64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DiscountFor returns the discount this coupon grants on the given subtotal.
func (c *Coupon) DiscountFor(subtotal float64) float64 {
	if c.DiscountType == DiscountPercent {
		return subtotal * c.Amount / 100
	}
	if c.Amount > subtotal {
		return subtotal
	}
	return c.Amount
}
