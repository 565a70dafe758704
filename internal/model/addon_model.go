// GORM model for the addon catalog table
package model

import (
	"time"
)

// Addon represents one installable storefront feature. The slug is the join
// key between the catalog row and the registered handler implementation.
type Addon struct {
	Id          uint64    `gorm:"primaryKey;autoIncrement"`
	AddonSlug   string    `gorm:"type:varchar(191);uniqueIndex;not null"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Type        string    `gorm:"type:varchar(20);not null;default:'free'"` // free, premium
	Category    string    `gorm:"type:varchar(255);not null"`
	IsEnabled   bool      `gorm:"default:false"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Addon) TableName() string {
	return "spwa_addons"
}
