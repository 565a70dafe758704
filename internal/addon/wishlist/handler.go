// Package wishlist lets signed-in customers keep a list of favorite
// products. It mounts its own storefront routes when enabled; toggling the
// same product twice returns it to the previous state.
package wishlist

import (
	"context"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/pkg/serverutils"
	"speedpress-addons-be/internal/repository/contract"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type handler struct {
	validate *validator.Validate
}

func New() addon.Handler {
	return &handler{
		validate: validator.New(),
	}
}

func (h *handler) Slug() string {
	return manifest.SlugWishlistLite
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	group := host.Storefront.Group("/wishlist", serverutils.JwtMiddleware)
	group.Get("/", h.list(host))
	group.Post("/toggle", h.toggle(host))
	return nil
}

func (h *handler) list(host *addon.Host) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, err := currentUserId(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid session"))
		}

		productIds, err := host.Wishlist.FindProductIds(c.UserContext(), userId)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, "Failed to load wishlist"))
		}

		items := make([]dto.WishlistItemResponse, 0, len(productIds))
		for _, productId := range productIds {
			product, err := host.Products.FindById(c.UserContext(), productId)
			if err != nil || product == nil {
				continue
			}
			items = append(items, dto.WishlistItemResponse{
				ProductId: product.Id,
				Name:      product.Name,
				Price:     product.Price,
			})
		}
		return c.JSON(serverutils.SuccessResponse("Wishlist retrieved", items))
	}
}

func (h *handler) toggle(host *addon.Host) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userId, err := currentUserId(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid session"))
		}

		var req dto.WishlistToggleRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid request body"))
		}
		if err := h.validate.Struct(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "product_id is required"))
		}

		product, err := host.Products.FindById(c.UserContext(), req.ProductId)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, "Failed to toggle wishlist"))
		}
		if product == nil {
			return c.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Product not found"))
		}

		action, err := toggleItem(c.UserContext(), host.Wishlist, userId, req.ProductId)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(fiber.StatusInternalServerError, "Failed to toggle wishlist"))
		}
		return c.JSON(serverutils.SuccessResponse("Wishlist updated", dto.WishlistToggleResponse{Action: action}))
	}
}

func toggleItem(ctx context.Context, repo contract.WishlistRepository, userId, productId uuid.UUID) (string, error) {
	has, err := repo.Has(ctx, userId, productId)
	if err != nil {
		return "", err
	}
	if has {
		if err := repo.Remove(ctx, userId, productId); err != nil {
			return "", err
		}
		return "removed", nil
	}
	if err := repo.Add(ctx, userId, productId); err != nil {
		return "", err
	}
	return "added", nil
}

func currentUserId(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}
