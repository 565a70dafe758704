package dto

import "github.com/google/uuid"

type WishlistToggleRequest struct {
	ProductId uuid.UUID `json:"product_id" validate:"required"`
}

type WishlistToggleResponse struct {
	Action string `json:"action"` // added, removed
}

type WishlistItemResponse struct {
	ProductId uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
}
