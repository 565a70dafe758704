package addon

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogStub struct {
	enabled []string
}

func (s *catalogStub) UpsertManifest(ctx context.Context, entries []entity.ManifestEntry) error {
	return nil
}
func (s *catalogStub) ListAll(ctx context.Context) ([]*entity.Addon, error) { return nil, nil }
func (s *catalogStub) ListGrouped(ctx context.Context) (map[string][]dto.AddonResponse, error) {
	return nil, nil
}
func (s *catalogStub) SetEnabled(ctx context.Context, slug string, enabled bool) (*entity.Addon, error) {
	return nil, nil
}
func (s *catalogStub) IsEnabled(ctx context.Context, slug string) bool { return false }
func (s *catalogStub) EnabledSlugs(ctx context.Context) ([]string, error) {
	return s.enabled, nil
}
func (s *catalogStub) WatchToggleInvalidations(ctx context.Context) {}

type stubHandler struct {
	slug       string
	registered *bool
	fail       error
	panics     bool
}

func (h *stubHandler) Slug() string { return h.slug }

func (h *stubHandler) Register(ctx context.Context, host *Host) error {
	if h.panics {
		panic("addon went sideways")
	}
	if h.fail != nil {
		return h.fail
	}
	*h.registered = true
	return nil
}

func newTestLoader(t *testing.T, registry *Registry, enabled []string) *Loader {
	t.Helper()
	sysLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	return NewLoader(registry, &catalogStub{enabled: enabled}, sysLogger)
}

func TestLoaderLoadsOnlyEnabledAddons(t *testing.T) {
	var loadedA, loadedB bool
	registry := NewRegistry()
	registry.Register("addon-a", func() Handler { return &stubHandler{slug: "addon-a", registered: &loadedA} })
	registry.Register("addon-b", func() Handler { return &stubHandler{slug: "addon-b", registered: &loadedB} })

	loader := newTestLoader(t, registry, []string{"addon-a"})

	loaded, err := loader.LoadEnabled(context.Background(), &Host{Hooks: hook.NewDispatcher()})
	require.NoError(t, err)

	assert.Equal(t, []string{"addon-a"}, loaded)
	assert.True(t, loadedA)
	assert.False(t, loadedB)
}

func TestLoaderIsolatesPanickingAddon(t *testing.T) {
	var healthyLoaded bool
	registry := NewRegistry()
	registry.Register("broken", func() Handler { return &stubHandler{slug: "broken", panics: true} })
	registry.Register("healthy", func() Handler { return &stubHandler{slug: "healthy", registered: &healthyLoaded} })

	loader := newTestLoader(t, registry, []string{"broken", "healthy"})

	loaded, err := loader.LoadEnabled(context.Background(), &Host{Hooks: hook.NewDispatcher()})
	require.NoError(t, err)

	assert.Equal(t, []string{"healthy"}, loaded)
	assert.True(t, healthyLoaded)
}

func TestLoaderSkipsFailingAddon(t *testing.T) {
	var healthyLoaded bool
	registry := NewRegistry()
	registry.Register("failing", func() Handler {
		return &stubHandler{slug: "failing", fail: errors.New("no smtp")}
	})
	registry.Register("healthy", func() Handler { return &stubHandler{slug: "healthy", registered: &healthyLoaded} })

	loader := newTestLoader(t, registry, []string{"failing", "healthy"})

	loaded, err := loader.LoadEnabled(context.Background(), &Host{Hooks: hook.NewDispatcher()})
	require.NoError(t, err)

	assert.Equal(t, []string{"healthy"}, loaded)
}

func TestLoaderSkipsUnregisteredSlug(t *testing.T) {
	registry := NewRegistry()
	loader := newTestLoader(t, registry, []string{"ghost-addon"})

	loaded, err := loader.LoadEnabled(context.Background(), &Host{})
	require.NoError(t, err)

	assert.Empty(t, loaded)
}
