// GORM model for the per-addon settings bag
package model

import (
	"time"

	"gorm.io/datatypes"
)

// AddonSetting is one key of a slug-scoped settings bag. The bag is decoupled
// from the catalog's enabled bit so each handler can evolve its own schema.
type AddonSetting struct {
	Id           uint64         `gorm:"primaryKey;autoIncrement"`
	AddonSlug    string         `gorm:"type:varchar(191);not null;uniqueIndex:idx_addon_setting_key"`
	SettingKey   string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_addon_setting_key"`
	SettingValue datatypes.JSON `gorm:"not null"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
}

func (AddonSetting) TableName() string {
	return "spwa_addon_settings"
}
