package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/implementation"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "catalog.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Addon{}))
	return db
}

func newCatalogService(t *testing.T, db *gorm.DB) ICatalogService {
	t.Helper()
	repo := implementation.NewAddonRepository(db)
	sysLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))
	return NewCatalogService(repo, 10*time.Second, nil, "spwa:addon-toggle", nil, nil, sysLogger)
}

func testManifest() []entity.ManifestEntry {
	return []entity.ManifestEntry{
		{Slug: "wishlist-lite", Title: "Wishlist Lite", Description: "Favorites", Type: entity.AddonTypeFree, Category: "product"},
		{Slug: "auto-apply-coupon", Title: "Auto Apply Coupon", Description: "Coupons", Type: entity.AddonTypeFree, Category: "cart-checkout"},
		{Slug: "maintenance-mode", Title: "Maintenance Mode", Description: "Offline switch", Type: entity.AddonTypeFree, Category: "general"},
	}
}

func TestUpsertManifestIsIdempotent(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))
	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpsertManifestPreservesEnabledChoice(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))

	_, err := svc.SetEnabled(ctx, "wishlist-lite", true)
	require.NoError(t, err)

	// Re-registering with a changed description must refresh the text but
	// leave the enabled bit alone.
	updated := testManifest()
	updated[0].Description = "Favorites, now with lists"
	require.NoError(t, svc.UpsertManifest(ctx, updated))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	for _, addon := range all {
		if addon.Slug == "wishlist-lite" {
			assert.True(t, addon.Enabled)
			assert.Equal(t, "Favorites, now with lists", addon.Description)
		}
	}
}

func TestSetEnabledUnknownSlug(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)

	_, err := svc.SetEnabled(context.Background(), "no-such-addon", true)

	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestSetEnabledRoundTrip(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))

	addon, err := svc.SetEnabled(ctx, "auto-apply-coupon", true)
	require.NoError(t, err)
	assert.True(t, addon.Enabled)
	assert.True(t, svc.IsEnabled(ctx, "auto-apply-coupon"))

	addon, err = svc.SetEnabled(ctx, "auto-apply-coupon", false)
	require.NoError(t, err)
	assert.False(t, addon.Enabled)
	assert.False(t, svc.IsEnabled(ctx, "auto-apply-coupon"))
}

func TestIsEnabledDefaultsOffForUnknownSlug(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)

	assert.False(t, svc.IsEnabled(context.Background(), "no-such-addon"))
}

func TestEnabledSlugs(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))
	_, err := svc.SetEnabled(ctx, "wishlist-lite", true)
	require.NoError(t, err)
	_, err = svc.SetEnabled(ctx, "maintenance-mode", true)
	require.NoError(t, err)

	slugs, err := svc.EnabledSlugs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"wishlist-lite", "maintenance-mode"}, slugs)
}

func TestListGroupedBucketsByCategory(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)
	ctx := context.Background()

	require.NoError(t, svc.UpsertManifest(ctx, testManifest()))

	grouped, err := svc.ListGrouped(ctx)
	require.NoError(t, err)

	require.Contains(t, grouped, "general-addons")
	require.Contains(t, grouped, "product-addons")
	require.Contains(t, grouped, "cart-checkout-addons")

	wishlist := grouped["product-addons"][0]
	assert.Equal(t, "wishlist-lite", wishlist.Id)
	assert.Equal(t, "Wishlist Lite", wishlist.Name)
	assert.False(t, wishlist.Enabled)
}

func TestListGroupedEmptyCatalog(t *testing.T) {
	db := newCatalogTestDB(t)
	svc := newCatalogService(t, db)

	grouped, err := svc.ListGrouped(context.Background())

	require.NoError(t, err)
	assert.Empty(t, grouped)
}
