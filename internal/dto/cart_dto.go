package dto

import "github.com/google/uuid"

type AddCartItemRequest struct {
	CartId    string    `json:"cart_id"`
	ProductId uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}
