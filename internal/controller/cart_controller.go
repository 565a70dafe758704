package controller

import (
	"errors"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/pkg/serverutils"
	"speedpress-addons-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICartController interface {
	RegisterRoutes(r fiber.Router)
	AddItem(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type cartController struct {
	service service.ICartService
}

func NewCartController(service service.ICartService) ICartController {
	return &cartController{service: service}
}

func (c *cartController) RegisterRoutes(r fiber.Router) {
	r.Post("/cart/items", c.AddItem)
	r.Get("/cart/:id", c.Show)
}

func (c *cartController) AddItem(ctx *fiber.Ctx) error {
	var req dto.AddCartItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	cart, err := c.service.AddItem(ctx.UserContext(), req.CartId, req.ProductId, req.Quantity)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Product not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add cart item", cart))
}

func (c *cartController) Show(ctx *fiber.Ctx) error {
	cart, err := c.service.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrCartNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Cart not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get cart", cart))
}
