package service

import (
	"context"
	"path/filepath"
	"testing"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/implementation"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSettingsTestService(t *testing.T) ISettingsService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "settings.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Addon{}, &model.AddonSetting{}))

	addons := implementation.NewAddonRepository(db)
	require.NoError(t, addons.Upsert(context.Background(), entity.ManifestEntry{
		Slug:     "auto-apply-coupon",
		Title:    "Auto Apply Coupon",
		Type:     entity.AddonTypeFree,
		Category: "cart-checkout",
	}))

	return NewSettingsService(implementation.NewAddonSettingRepository(db), addons)
}

func TestSettingsPutAndGetAll(t *testing.T) {
	svc := newSettingsTestService(t)
	ctx := context.Background()

	err := svc.Put(ctx, "auto-apply-coupon", map[string]interface{}{
		"coupon_code": "WELCOME10",
		"threshold":   150.0,
	})
	require.NoError(t, err)

	values, err := svc.GetAll(ctx, "auto-apply-coupon")
	require.NoError(t, err)
	assert.Equal(t, "WELCOME10", values["coupon_code"])
	assert.Equal(t, 150.0, values["threshold"])
}

func TestSettingsPutOverwritesKey(t *testing.T) {
	svc := newSettingsTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "auto-apply-coupon", map[string]interface{}{"coupon_code": "OLD"}))
	require.NoError(t, svc.Put(ctx, "auto-apply-coupon", map[string]interface{}{"coupon_code": "NEW"}))

	assert.Equal(t, "NEW", svc.String(ctx, "auto-apply-coupon", "coupon_code", ""))
}

func TestSettingsUnknownSlugRejected(t *testing.T) {
	svc := newSettingsTestService(t)
	ctx := context.Background()

	err := svc.Put(ctx, "no-such-addon", map[string]interface{}{"k": "v"})
	assert.ErrorIs(t, err, ErrAddonNotFound)

	_, err = svc.GetAll(ctx, "no-such-addon")
	assert.ErrorIs(t, err, ErrAddonNotFound)
}

func TestSettingsTypedGettersFallBack(t *testing.T) {
	svc := newSettingsTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Put(ctx, "auto-apply-coupon", map[string]interface{}{
		"coupon_code": "WELCOME10",
		"threshold":   200.0,
	}))

	assert.Equal(t, "WELCOME10", svc.String(ctx, "auto-apply-coupon", "coupon_code", "fallback"))
	assert.Equal(t, 200.0, svc.Float(ctx, "auto-apply-coupon", "threshold", 100.0))
	assert.Equal(t, 200, svc.Int(ctx, "auto-apply-coupon", "threshold", 5))

	// Missing key
	assert.Equal(t, "fallback", svc.String(ctx, "auto-apply-coupon", "missing", "fallback"))
	assert.Equal(t, 5, svc.Int(ctx, "auto-apply-coupon", "missing", 5))

	// Wrong type
	assert.Equal(t, 100.0, svc.Float(ctx, "auto-apply-coupon", "coupon_code", 100.0))
}
