// Package forcelogin redirects anonymous visitors away from the cart and
// checkout surfaces to the store login page, carrying the original URL so
// the storefront can send them back after signing in.
package forcelogin

import (
	"context"
	"net/url"
	"strings"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

var guardedSegments = []string{"cart", "checkout"}

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugForceLoginBeforeCart
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	loginURL := host.Config.Store.LoginURL

	host.Storefront.Use(func(c *fiber.Ctx) error {
		if !host.Catalog.IsEnabled(c.UserContext(), manifest.SlugForceLoginBeforeCart) {
			return c.Next()
		}
		if !guarded(c.Path()) || authenticated(c) {
			return c.Next()
		}

		target := loginURL + "?redirect_to=" + url.QueryEscape(c.OriginalURL())
		return c.Redirect(target, fiber.StatusFound)
	})
	return nil
}

// guarded matches path segments, not prefixes, so the check holds wherever
// the storefront group is mounted.
func guarded(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		for _, g := range guardedSegments {
			if segment == g {
				return true
			}
		}
	}
	return false
}

func authenticated(c *fiber.Ctx) bool {
	_, err := serverutils.ParseBearerClaims(c)
	return err == nil
}
