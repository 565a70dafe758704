package controller

import (
	"errors"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/pkg/serverutils"
	"speedpress-addons-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICheckoutController interface {
	RegisterRoutes(r fiber.Router)
	PlaceOrder(ctx *fiber.Ctx) error
}

type checkoutController struct {
	service service.ICheckoutService
}

func NewCheckoutController(service service.ICheckoutService) ICheckoutController {
	return &checkoutController{service: service}
}

func (c *checkoutController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/checkout")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.PlaceOrder)
}

func (c *checkoutController) PlaceOrder(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(fiber.StatusUnauthorized, "Invalid session"))
	}

	var req dto.CheckoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	order, err := c.service.PlaceOrder(ctx.UserContext(), userId, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCartNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Cart not found"))
		case errors.Is(err, service.ErrValidation):
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, err.Error()))
		default:
			return err
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Order placed", dto.OrderResponse{
		Id:       order.Id,
		Status:   order.Status,
		Subtotal: order.Subtotal,
		Discount: order.Discount,
		Total:    order.Total,
	}))
}
