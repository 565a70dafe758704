package service

import (
	"context"
	"encoding/json"
	"fmt"

	"speedpress-addons-be/internal/repository/contract"
)

// ISettingsService is the slug-scoped settings bag each addon reads its own
// configuration from. Typed getters fall back to the given default on any
// missing key, wrong type or storage error, matching the forgiving semantics
// handlers need inside a request.
type ISettingsService interface {
	GetAll(ctx context.Context, addonSlug string) (map[string]interface{}, error)
	Put(ctx context.Context, addonSlug string, values map[string]interface{}) error
	String(ctx context.Context, addonSlug, key, fallback string) string
	Float(ctx context.Context, addonSlug, key string, fallback float64) float64
	Int(ctx context.Context, addonSlug, key string, fallback int) int
}

type settingsService struct {
	settings contract.AddonSettingRepository
	addons   contract.AddonRepository
}

func NewSettingsService(settings contract.AddonSettingRepository, addons contract.AddonRepository) ISettingsService {
	return &settingsService{
		settings: settings,
		addons:   addons,
	}
}

func (s *settingsService) GetAll(ctx context.Context, addonSlug string) (map[string]interface{}, error) {
	if err := s.requireKnownSlug(ctx, addonSlug); err != nil {
		return nil, err
	}

	raw, err := s.settings.GetAll(ctx, addonSlug)
	if err != nil {
		return nil, err
	}

	values := make(map[string]interface{}, len(raw))
	for key, data := range raw {
		var value interface{}
		if err := json.Unmarshal(data, &value); err != nil {
			return nil, fmt.Errorf("decode setting %q of %q: %w", key, addonSlug, err)
		}
		values[key] = value
	}
	return values, nil
}

func (s *settingsService) Put(ctx context.Context, addonSlug string, values map[string]interface{}) error {
	if err := s.requireKnownSlug(ctx, addonSlug); err != nil {
		return err
	}

	for key, value := range values {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode setting %q of %q: %w", key, addonSlug, err)
		}
		if err := s.settings.Put(ctx, addonSlug, key, data); err != nil {
			return err
		}
	}
	return nil
}

func (s *settingsService) String(ctx context.Context, addonSlug, key, fallback string) string {
	if value, ok := s.lookup(ctx, addonSlug, key).(string); ok {
		return value
	}
	return fallback
}

func (s *settingsService) Float(ctx context.Context, addonSlug, key string, fallback float64) float64 {
	if value, ok := s.lookup(ctx, addonSlug, key).(float64); ok {
		return value
	}
	return fallback
}

func (s *settingsService) Int(ctx context.Context, addonSlug, key string, fallback int) int {
	// JSON numbers decode as float64.
	if value, ok := s.lookup(ctx, addonSlug, key).(float64); ok {
		return int(value)
	}
	return fallback
}

func (s *settingsService) lookup(ctx context.Context, addonSlug, key string) interface{} {
	raw, err := s.settings.GetAll(ctx, addonSlug)
	if err != nil {
		return nil
	}
	data, found := raw[key]
	if !found {
		return nil
	}
	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return nil
	}
	return value
}

func (s *settingsService) requireKnownSlug(ctx context.Context, addonSlug string) error {
	addon, err := s.addons.FindBySlug(ctx, addonSlug)
	if err != nil {
		return err
	}
	if addon == nil {
		return ErrAddonNotFound
	}
	return nil
}
