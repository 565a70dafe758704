package model

import (
	"github.com/google/uuid"
)

// ProductMeta holds per-product counters (views, purchases) keyed the same
// way the storefront templates read them back.
type ProductMeta struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement"`
	ProductId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_product_meta_key"`
	MetaKey   string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_product_meta_key"`
	MetaValue int64     `gorm:"default:0"`
}

func (ProductMeta) TableName() string {
	return "product_meta"
}
