package controller

import (
	"errors"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/pkg/serverutils"
	"speedpress-addons-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IProductController interface {
	RegisterStorefrontRoutes(r fiber.Router)
	RegisterAdminRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	ListAdmin(ctx *fiber.Ctx) error
}

type productController struct {
	service service.IProductService
}

func NewProductController(service service.IProductService) IProductController {
	return &productController{service: service}
}

func (c *productController) RegisterStorefrontRoutes(r fiber.Router) {
	r.Get("/products/:id", c.Show)
}

func (c *productController) RegisterAdminRoutes(r fiber.Router) {
	h := r.Group("/admin/v1/products")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.AdminMiddleware)
	h.Get("", c.ListAdmin)
	h.Post("", c.Create)
}

func (c *productController) Show(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(fiber.StatusBadRequest, "Invalid product id"))
	}

	res, err := c.service.GetDetail(ctx.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Product not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get product", res))
}

func (c *productController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	product, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create product", dto.AdminProductResponse{
		Id:            product.Id,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		ManageStock:   product.ManageStock,
	}))
}

func (c *productController) ListAdmin(ctx *fiber.Ctx) error {
	res, err := c.service.ListAdmin(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get products", res))
}
