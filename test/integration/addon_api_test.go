package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"speedpress-addons-be/internal/bootstrap"
	"speedpress-addons-be/internal/config"
	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/server"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type apiFixture struct {
	app       *fiber.App
	container *bootstrap.Container
}

func newApiFixture(t *testing.T) *apiFixture {
	t.Helper()
	t.Setenv("JWT_SECRET", "integration-test-secret")
	t.Setenv("LOG_FILE_PATH", filepath.Join(t.TempDir(), "app.log"))

	cfg := config.Load()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "store.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Addon{}, &model.AddonSetting{},
		&model.User{}, &model.Product{}, &model.ProductMeta{},
		&model.Coupon{}, &model.Order{}, &model.OrderItem{},
		&model.WishlistItem{},
	))

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)

	return &apiFixture{app: srv.GetApp(), container: container}
}

func (f *apiFixture) seedManifest(t *testing.T) {
	t.Helper()
	require.NoError(t, f.container.CatalogService.UpsertManifest(context.Background(), manifest.Shipped()))
}

func signToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "0b9f9f7e-0000-4000-8000-000000000001",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(os.Getenv("JWT_SECRET")))
	require.NoError(t, err)
	return token
}

func (f *apiFixture) request(t *testing.T, method, path, body, token string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.app.Test(req, 5000)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func TestGetAddonsRequiresAdmin(t *testing.T) {
	f := newApiFixture(t)

	resp, _ := f.request(t, "GET", "/api/spwa/v1/get-addons", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = f.request(t, "GET", "/api/spwa/v1/get-addons", "", signToken(t, "customer"))
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestGetAddonsEmptyCatalog(t *testing.T) {
	f := newApiFixture(t)

	resp, body := f.request(t, "GET", "/api/spwa/v1/get-addons", "", signToken(t, "admin"))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload dto.GetAddonsResponse
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "No addons found.", payload.Message)
}

func TestGetAddonsGroupsByCategory(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)

	resp, body := f.request(t, "GET", "/api/spwa/v1/get-addons", "", signToken(t, "admin"))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload dto.GetAddonsResponse
	require.NoError(t, json.Unmarshal(body, &payload))
	require.True(t, payload.Success)

	require.Contains(t, payload.Addons, "general-addons")
	require.Contains(t, payload.Addons, "product-addons")
	require.Contains(t, payload.Addons, "cart-checkout-addons")
	assert.Len(t, payload.Addons["general-addons"], 6)

	wishlist := payload.Addons["product-addons"][0]
	assert.Equal(t, "wishlist-lite", wishlist.Id)
	assert.Equal(t, "Wishlist Lite", wishlist.Name)
	assert.False(t, wishlist.Enabled)
}

func TestToggleUnknownAddon(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)

	resp, body := f.request(t, "POST", "/api/spwa/v1/addon-toggle",
		`{"addon_slug":"no-such-addon","enabled":true}`, signToken(t, "admin"))

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var payload dto.AddonToggleResponse
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Success)
	assert.Equal(t, "Addon not found.", payload.Message)
}

func TestToggleMissingFields(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)

	resp, _ := f.request(t, "POST", "/api/spwa/v1/addon-toggle",
		`{"addon_slug":"wishlist-lite"}`, signToken(t, "admin"))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTogglePersistsAcrossReads(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)
	admin := signToken(t, "admin")

	resp, body := f.request(t, "POST", "/api/spwa/v1/addon-toggle",
		`{"addon_slug":"wishlist-lite","enabled":true}`, admin)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var toggled dto.AddonToggleResponse
	require.NoError(t, json.Unmarshal(body, &toggled))
	assert.True(t, toggled.Success)
	assert.Equal(t, "wishlist-lite", toggled.AddonSlug)
	assert.True(t, toggled.Enabled)

	_, body = f.request(t, "GET", "/api/spwa/v1/get-addons", "", admin)
	var listed dto.GetAddonsResponse
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.True(t, listed.Addons["product-addons"][0].Enabled)
}

func TestToggleAcceptsLegacyBooleanEncodings(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)
	admin := signToken(t, "admin")

	for _, encoded := range []string{`"1"`, `1`, `"true"`} {
		resp, body := f.request(t, "POST", "/api/spwa/v1/addon-toggle",
			`{"addon_slug":"maintenance-mode","enabled":`+encoded+`}`, admin)

		require.Equal(t, fiber.StatusOK, resp.StatusCode, "encoding %s", encoded)
		var payload dto.AddonToggleResponse
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.True(t, payload.Enabled, "encoding %s", encoded)
	}

	resp, body := f.request(t, "POST", "/api/spwa/v1/addon-toggle",
		`{"addon_slug":"maintenance-mode","enabled":"0"}`, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload dto.AddonToggleResponse
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.False(t, payload.Enabled)
}

func TestAddonSettingsRoundTrip(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)
	admin := signToken(t, "admin")

	resp, _ := f.request(t, "PUT", "/api/spwa/v1/addon-settings/auto-apply-coupon",
		`{"settings":{"coupon_code":"WELCOME10","threshold":150}}`, admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := f.request(t, "GET", "/api/spwa/v1/addon-settings/auto-apply-coupon", "", admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "WELCOME10", payload.Data["coupon_code"])
	assert.Equal(t, 150.0, payload.Data["threshold"])
}

func TestAddonSettingsUnknownSlug(t *testing.T) {
	f := newApiFixture(t)
	f.seedManifest(t)

	resp, _ := f.request(t, "GET", "/api/spwa/v1/addon-settings/no-such-addon", "", signToken(t, "admin"))

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
