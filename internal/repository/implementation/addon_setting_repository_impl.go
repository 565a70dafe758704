package implementation

import (
	"context"
	"encoding/json"

	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddonSettingRepositoryImpl struct {
	db *gorm.DB
}

func NewAddonSettingRepository(db *gorm.DB) contract.AddonSettingRepository {
	return &AddonSettingRepositoryImpl{db: db}
}

func (r *AddonSettingRepositoryImpl) GetAll(ctx context.Context, slug string) (map[string]json.RawMessage, error) {
	var models []*model.AddonSetting
	if err := r.db.WithContext(ctx).Where("addon_slug = ?", slug).Find(&models).Error; err != nil {
		return nil, err
	}

	settings := make(map[string]json.RawMessage, len(models))
	for _, m := range models {
		settings[m.SettingKey] = json.RawMessage(m.SettingValue)
	}
	return settings, nil
}

func (r *AddonSettingRepositoryImpl) Put(ctx context.Context, slug, key string, value json.RawMessage) error {
	m := &model.AddonSetting{
		AddonSlug:    slug,
		SettingKey:   key,
		SettingValue: datatypes.JSON(value),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "addon_slug"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
	}).Create(m).Error
}
