// Mapper for Addon entity <-> model conversion
package mapper

import (
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
)

type AddonMapper struct{}

func NewAddonMapper() *AddonMapper {
	return &AddonMapper{}
}

func (m *AddonMapper) ToEntity(model *model.Addon) *entity.Addon {
	if model == nil {
		return nil
	}
	return &entity.Addon{
		Id:          model.Id,
		Slug:        model.AddonSlug,
		Title:       model.Title,
		Description: model.Description,
		Type:        entity.AddonType(model.Type),
		Category:    model.Category,
		Enabled:     model.IsEnabled,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func (m *AddonMapper) ToModel(entity *entity.Addon) *model.Addon {
	if entity == nil {
		return nil
	}
	return &model.Addon{
		Id:          entity.Id,
		AddonSlug:   entity.Slug,
		Title:       entity.Title,
		Description: entity.Description,
		Type:        string(entity.Type),
		Category:    entity.Category,
		IsEnabled:   entity.Enabled,
		CreatedAt:   entity.CreatedAt,
		UpdatedAt:   entity.UpdatedAt,
	}
}

func (m *AddonMapper) ToEntities(models []*model.Addon) []*entity.Addon {
	entities := make([]*entity.Addon, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
