package events

import "github.com/google/uuid"

// JSON payloads carried on the async bus. One struct per topic.

type OrderCompletedPayload struct {
	OrderId uuid.UUID          `json:"order_id"`
	UserId  uuid.UUID          `json:"user_id"`
	Items   []OrderItemPayload `json:"items"`
}

type OrderItemPayload struct {
	ProductId uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

type ProductViewedPayload struct {
	ProductId uuid.UUID `json:"product_id"`
}

type ProductLowStockPayload struct {
	ProductId   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Stock       int       `json:"stock"`
}
