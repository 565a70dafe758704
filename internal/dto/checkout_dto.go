package dto

import "github.com/google/uuid"

type CheckoutRequest struct {
	CartId          string `json:"cart_id" validate:"required"`
	BillingCountry  string `json:"billing_country" validate:"required,len=2"`
	ShippingCountry string `json:"shipping_country" validate:"omitempty,len=2"`
}

type OrderResponse struct {
	Id       uuid.UUID `json:"id"`
	Status   string    `json:"status"`
	Subtotal float64   `json:"subtotal"`
	Discount float64   `json:"discount"`
	Total    float64   `json:"total"`
}
