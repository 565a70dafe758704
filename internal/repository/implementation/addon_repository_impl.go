// Implementation of AddonRepository
package implementation

import (
	"context"
	"errors"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/mapper"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddonRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AddonMapper
}

func NewAddonRepository(db *gorm.DB) contract.AddonRepository {
	return &AddonRepositoryImpl{
		db:     db,
		mapper: mapper.NewAddonMapper(),
	}
}

func (r *AddonRepositoryImpl) Upsert(ctx context.Context, entry entity.ManifestEntry) error {
	m := &model.Addon{
		AddonSlug:   entry.Slug,
		Title:       entry.Title,
		Description: entry.Description,
		Type:        string(entry.Type),
		Category:    entry.Category,
		IsEnabled:   false,
	}

	// Insert-if-absent; refresh descriptive fields on conflict. is_enabled
	// stays out of the assignment list so toggles survive re-upserts.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "addon_slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "description", "type", "category"}),
	}).Create(m).Error
}

func (r *AddonRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*entity.Addon, error) {
	var m model.Addon
	if err := r.db.WithContext(ctx).Where("addon_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AddonRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Addon, error) {
	var models []*model.Addon
	if err := r.db.WithContext(ctx).Order("category ASC, title ASC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AddonRepositoryImpl) FindEnabledSlugs(ctx context.Context) ([]string, error) {
	var slugs []string
	err := r.db.WithContext(ctx).
		Model(&model.Addon{}).
		Where("is_enabled = ?", true).
		Pluck("addon_slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

func (r *AddonRepositoryImpl) SetEnabled(ctx context.Context, slug string, enabled bool) error {
	return r.db.WithContext(ctx).
		Model(&model.Addon{}).
		Where("addon_slug = ?", slug).
		Update("is_enabled", enabled).Error
}
