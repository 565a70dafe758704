package mapper

import (
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(model *model.User) *entity.User {
	if model == nil {
		return nil
	}
	return &entity.User{
		Id:           model.Id,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		FullName:     model.FullName,
		Role:         entity.UserRole(model.Role),
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(entity *entity.User) *model.User {
	if entity == nil {
		return nil
	}
	return &model.User{
		Id:           entity.Id,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		FullName:     entity.FullName,
		Role:         string(entity.Role),
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}
