package entity

import (
	"github.com/google/uuid"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeInfo    NoticeKind = "notice"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-facing message produced while recalculating a cart,
// mirroring the storefront notice channel.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

type CartItem struct {
	ProductId uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
}

// Cart is a per-session shopping cart. It lives in the session store only;
// orders are the persisted outcome.
type Cart struct {
	Id      string     `json:"id"`
	UserId  *uuid.UUID `json:"user_id,omitempty"`
	Items   []CartItem `json:"items"`
	Coupons []string   `json:"coupons"`

	// Computed on each totals calculation.
	Subtotal float64  `json:"subtotal"`
	Discount float64  `json:"discount"`
	Total    float64  `json:"total"`
	Notices  []Notice `json:"notices"`
}

// SubtotalExTax sums item line totals before discounts and tax.
func (c *Cart) SubtotalExTax() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return sum
}

func (c *Cart) HasCoupon(code string) bool {
	for _, applied := range c.Coupons {
		if applied == code {
			return true
		}
	}
	return false
}

// ApplyCoupon records a coupon code once; applying twice is a no-op.
func (c *Cart) ApplyCoupon(code string) {
	if c.HasCoupon(code) {
		return
	}
	c.Coupons = append(c.Coupons, code)
}

func (c *Cart) RemoveCoupon(code string) {
	kept := c.Coupons[:0]
	for _, applied := range c.Coupons {
		if applied != code {
			kept = append(kept, applied)
		}
	}
	c.Coupons = kept
}

func (c *Cart) AddNotice(kind NoticeKind, message string) {
	c.Notices = append(c.Notices, Notice{Kind: kind, Message: message})
}

func (c *Cart) AddItem(item CartItem) {
	for i, existing := range c.Items {
		if existing.ProductId == item.ProductId {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}
