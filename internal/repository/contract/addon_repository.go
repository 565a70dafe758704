// Repository interface for the addon catalog (single source of truth for
// which addons exist and whether each is enabled)
package contract

import (
	"context"

	"speedpress-addons-be/internal/entity"
)

type AddonRepository interface {
	// Upsert inserts a manifest entry if the slug is absent, otherwise
	// refreshes the descriptive fields while leaving is_enabled untouched.
	Upsert(ctx context.Context, entry entity.ManifestEntry) error
	FindBySlug(ctx context.Context, slug string) (*entity.Addon, error)
	// FindAll returns all rows ordered by category then title.
	FindAll(ctx context.Context) ([]*entity.Addon, error)
	FindEnabledSlugs(ctx context.Context) ([]string, error)
	SetEnabled(ctx context.Context, slug string, enabled bool) error
}
