package dto

import "github.com/google/uuid"

type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stock_quantity" validate:"gte=0"`
	ManageStock   *bool   `json:"manage_stock"`
}

// ProductDetailResponse is the storefront product page. Counters are present
// only while the owning addon is enabled and the value is non-zero.
type ProductDetailResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	Views         *int64    `json:"views,omitempty"`
	Purchases     *int64    `json:"purchases,omitempty"`
}

// AdminProductResponse backs the admin product list, including the views
// column.
type AdminProductResponse struct {
	Id            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	ManageStock   bool      `json:"manage_stock"`
	Views         int64     `json:"views"`
}
