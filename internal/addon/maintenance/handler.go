// Package maintenance takes the storefront offline for regular visitors.
// The enabled flag is re-checked on every request through the short-lived
// flag cache, so switching the addon off brings the store back without a
// restart. Admin callers pass through.
package maintenance

import (
	"context"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

const defaultMessage = "We are currently performing scheduled maintenance. Please check back soon."

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugMaintenanceMode
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	host.Storefront.Use(func(c *fiber.Ctx) error {
		reqCtx := c.UserContext()
		if !host.Catalog.IsEnabled(reqCtx, manifest.SlugMaintenanceMode) {
			return c.Next()
		}
		if isAdmin(c) {
			return c.Next()
		}

		if redirect := host.Settings.String(reqCtx, manifest.SlugMaintenanceMode, "redirect_url", ""); redirect != "" {
			return c.Redirect(redirect, fiber.StatusFound)
		}

		message := host.Settings.String(reqCtx, manifest.SlugMaintenanceMode, "message", defaultMessage)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": message,
		})
	})
	return nil
}

func isAdmin(c *fiber.Ctx) bool {
	claims, err := serverutils.ParseBearerClaims(c)
	if err != nil {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "admin"
}
