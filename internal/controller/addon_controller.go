package controller

import (
	"errors"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/pkg/serverutils"
	"speedpress-addons-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAddonController interface {
	RegisterRoutes(r fiber.Router)
	GetAddons(ctx *fiber.Ctx) error
	Toggle(ctx *fiber.Ctx) error
	GetSettings(ctx *fiber.Ctx) error
	PutSettings(ctx *fiber.Ctx) error
}

type addonController struct {
	catalog  service.ICatalogService
	settings service.ISettingsService
}

func NewAddonController(catalog service.ICatalogService, settings service.ISettingsService) IAddonController {
	return &addonController{
		catalog:  catalog,
		settings: settings,
	}
}

func (c *addonController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/spwa/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("/get-addons", c.GetAddons)
	h.Post("/addon-toggle", c.Toggle)
	h.Get("/addon-settings/:slug", c.GetSettings)
	h.Put("/addon-settings/:slug", c.PutSettings)
}

// GetAddons returns the catalog grouped by category. An empty catalog is a
// 200 with success=false, matching what the dashboard expects.
func (c *addonController) GetAddons(ctx *fiber.Ctx) error {
	grouped, err := c.catalog.ListGrouped(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.GetAddonsResponse{
			Success: false,
			Message: "Failed to load addons.",
		})
	}

	if len(grouped) == 0 {
		return ctx.JSON(dto.GetAddonsResponse{
			Success: false,
			Message: "No addons found.",
		})
	}

	return ctx.JSON(dto.GetAddonsResponse{
		Success: true,
		Addons:  grouped,
	})
}

func (c *addonController) Toggle(ctx *fiber.Ctx) error {
	var req dto.AddonToggleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.AddonToggleResponse{
			Success: false,
			Message: "Invalid request body.",
		})
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(dto.AddonToggleResponse{
			Success: false,
			Message: "addon_slug and enabled are required.",
		})
	}

	addon, err := c.catalog.SetEnabled(ctx.UserContext(), req.AddonSlug, bool(*req.Enabled))
	if err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(dto.AddonToggleResponse{
				Success: false,
				Message: "Addon not found.",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(dto.AddonToggleResponse{
			Success: false,
			Message: "Failed to update addon.",
		})
	}

	return ctx.JSON(dto.AddonToggleResponse{
		Success:   true,
		AddonSlug: addon.Slug,
		Enabled:   addon.Enabled,
	})
}

func (c *addonController) GetSettings(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	values, err := c.settings.GetAll(ctx.UserContext(), slug)
	if err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Addon not found."))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, "Failed to load addon settings."))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get addon settings", values))
}

func (c *addonController) PutSettings(ctx *fiber.Ctx) error {
	slug := ctx.Params("slug")

	var req dto.AddonSettingsRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body."))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.settings.Put(ctx.UserContext(), slug, req.Settings); err != nil {
		if errors.Is(err, service.ErrAddonNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Addon not found."))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, "Failed to save addon settings."))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success save addon settings", nil))
}
