package service

import (
	"context"
	"fmt"
	"time"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/contract"
	"speedpress-addons-be/pkg/events"
	pktNats "speedpress-addons-be/pkg/nats"

	"github.com/gosimple/slug"
	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Broadcaster pushes dashboard notifications (toggle, low stock) to
// connected admin clients.
type Broadcaster interface {
	Broadcast(eventType string, payload map[string]interface{})
}

type ICatalogService interface {
	// UpsertManifest registers the shipped addons. Idempotent; never resets
	// the user's enabled choice.
	UpsertManifest(ctx context.Context, entries []entity.ManifestEntry) error
	ListAll(ctx context.Context) ([]*entity.Addon, error)
	ListGrouped(ctx context.Context) (map[string][]dto.AddonResponse, error)
	SetEnabled(ctx context.Context, addonSlug string, enabled bool) (*entity.Addon, error)
	// IsEnabled answers "is this addon currently on" fresh enough for
	// per-request checks: read-through with a short TTL, invalidated on
	// toggle.
	IsEnabled(ctx context.Context, addonSlug string) bool
	EnabledSlugs(ctx context.Context) ([]string, error)
	// WatchToggleInvalidations listens for toggles made by other instances
	// and drops the local flag cache entry. Blocks until ctx is done.
	WatchToggleInvalidations(ctx context.Context)
}

type catalogService struct {
	addons         contract.AddonRepository
	flags          *cache.Cache
	rdb            *redis.Client
	toggleChannel  string
	eventPublisher *pktNats.Publisher
	broadcaster    Broadcaster
	logger         logger.ILogger
}

func NewCatalogService(
	addons contract.AddonRepository,
	flagTTL time.Duration,
	rdb *redis.Client,
	toggleChannel string,
	eventPublisher *pktNats.Publisher,
	broadcaster Broadcaster,
	sysLogger logger.ILogger,
) ICatalogService {
	return &catalogService{
		addons:         addons,
		flags:          cache.New(flagTTL, 2*flagTTL),
		rdb:            rdb,
		toggleChannel:  toggleChannel,
		eventPublisher: eventPublisher,
		broadcaster:    broadcaster,
		logger:         sysLogger,
	}
}

func (s *catalogService) UpsertManifest(ctx context.Context, entries []entity.ManifestEntry) error {
	for _, entry := range entries {
		if err := s.addons.Upsert(ctx, entry); err != nil {
			return fmt.Errorf("upsert addon %q: %w", entry.Slug, err)
		}
	}
	return nil
}

func (s *catalogService) ListAll(ctx context.Context) ([]*entity.Addon, error) {
	return s.addons.FindAll(ctx)
}

// ListGrouped buckets the catalog by category-derived key, e.g. addons in
// category "cart-checkout" land under "cart-checkout-addons".
func (s *catalogService) ListGrouped(ctx context.Context) (map[string][]dto.AddonResponse, error) {
	all, err := s.addons.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]dto.AddonResponse)
	for _, addon := range all {
		key := "general-addons"
		if addon.Category != "" {
			key = slug.Make(addon.Category) + "-addons"
		}
		grouped[key] = append(grouped[key], dto.AddonResponse{
			Id:          addon.Slug,
			Name:        addon.Title,
			Description: addon.Description,
			Type:        string(addon.Type),
			Category:    addon.Category,
			Enabled:     addon.Enabled,
		})
	}
	return grouped, nil
}

func (s *catalogService) SetEnabled(ctx context.Context, addonSlug string, enabled bool) (*entity.Addon, error) {
	existing, err := s.addons.FindBySlug(ctx, addonSlug)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrAddonNotFound
	}

	if err := s.addons.SetEnabled(ctx, addonSlug, enabled); err != nil {
		return nil, fmt.Errorf("update addon %q: %w", addonSlug, err)
	}
	existing.Enabled = enabled

	s.invalidateFlag(ctx, addonSlug)

	// Audit + dashboard notification, both best-effort.
	if err := s.eventPublisher.Publish(ctx, events.NewAddonToggledEvent(addonSlug, enabled)); err != nil {
		s.logger.Warn("Catalog", "Failed to publish toggle audit event", map[string]interface{}{
			"addon_slug": addonSlug,
			"error":      err.Error(),
		})
	}
	if s.broadcaster != nil {
		s.broadcaster.Broadcast("addon_toggled", map[string]interface{}{
			"addon_slug": addonSlug,
			"enabled":    enabled,
		})
	}

	return existing, nil
}

func (s *catalogService) IsEnabled(ctx context.Context, addonSlug string) bool {
	if cached, found := s.flags.Get(addonSlug); found {
		return cached.(bool)
	}

	addon, err := s.addons.FindBySlug(ctx, addonSlug)
	if err != nil {
		s.logger.Error("Catalog", "Failed to read addon flag", map[string]interface{}{
			"addon_slug": addonSlug,
			"error":      err.Error(),
		})
		return false
	}

	enabled := addon != nil && addon.Enabled
	s.flags.Set(addonSlug, enabled, cache.DefaultExpiration)
	return enabled
}

func (s *catalogService) EnabledSlugs(ctx context.Context) ([]string, error) {
	return s.addons.FindEnabledSlugs(ctx)
}

// invalidateFlag drops the local cache entry and tells sibling instances to
// do the same. Workers that miss the message converge within the cache TTL.
func (s *catalogService) invalidateFlag(ctx context.Context, addonSlug string) {
	s.flags.Delete(addonSlug)

	if s.rdb == nil {
		return
	}
	if err := s.rdb.Publish(ctx, s.toggleChannel, addonSlug).Err(); err != nil {
		s.logger.Warn("Catalog", "Failed to publish flag invalidation", map[string]interface{}{
			"addon_slug": addonSlug,
			"error":      err.Error(),
		})
	}
}

func (s *catalogService) WatchToggleInvalidations(ctx context.Context) {
	if s.rdb == nil {
		return
	}

	sub := s.rdb.Subscribe(ctx, s.toggleChannel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			s.flags.Delete(msg.Payload)
		}
	}
}
