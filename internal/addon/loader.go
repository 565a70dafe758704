package addon

import (
	"context"
	"fmt"

	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/service"
)

// Loader boots the enabled addons. One misbehaving addon must never take the
// store down, so each registration runs isolated: a panic or error is logged
// and the loader moves on to the next slug.
type Loader struct {
	registry *Registry
	catalog  service.ICatalogService
	logger   logger.ILogger
}

func NewLoader(registry *Registry, catalog service.ICatalogService, sysLogger logger.ILogger) *Loader {
	return &Loader{
		registry: registry,
		catalog:  catalog,
		logger:   sysLogger,
	}
}

// LoadEnabled registers every enabled addon against the host and returns the
// slugs that loaded successfully. Slugs enabled in the catalog but missing
// from the registry are skipped with a warning.
func (l *Loader) LoadEnabled(ctx context.Context, host *Host) ([]string, error) {
	slugs, err := l.catalog.EnabledSlugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled addons: %w", err)
	}

	loaded := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		ctor, found := l.registry.Lookup(slug)
		if !found {
			l.logger.Warn("Addons", "Enabled addon has no registered handler", map[string]interface{}{
				"addon_slug": slug,
			})
			continue
		}
		if err := l.register(ctx, host, ctor()); err != nil {
			l.logger.Error("Addons", "Addon failed to load", map[string]interface{}{
				"addon_slug": slug,
				"error":      err.Error(),
			})
			continue
		}
		loaded = append(loaded, slug)
		l.logger.Info("Addons", "Addon loaded", map[string]interface{}{
			"addon_slug": slug,
		})
	}
	return loaded, nil
}

func (l *Loader) register(ctx context.Context, host *Host, handler Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during registration: %v", r)
		}
	}()
	return handler.Register(ctx, host)
}
