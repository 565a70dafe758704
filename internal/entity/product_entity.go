package entity

import (
	"time"

	"github.com/google/uuid"
)

// Meta keys for the per-product counters kept in product_meta.
const (
	MetaProductViews  = "_spwa_product_views"
	MetaPurchaseCount = "_spwa_purchase_count"
)

type Product struct {
	Id            uuid.UUID
	Name          string
	Description   string
	Price         float64
	StockQuantity int
	ManageStock   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
