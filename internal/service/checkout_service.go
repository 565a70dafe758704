package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/contract"
	"speedpress-addons-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type ICheckoutService interface {
	PlaceOrder(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*entity.Order, error)
}

type checkoutService struct {
	carts    ICartService
	products IProductService
	orders   contract.OrderRepository
	hooks    *hook.Dispatcher
	pubSub   *gochannel.GoChannel
	logger   logger.ILogger
}

func NewCheckoutService(
	carts ICartService,
	products IProductService,
	orders contract.OrderRepository,
	hooks *hook.Dispatcher,
	pubSub *gochannel.GoChannel,
	sysLogger logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		carts:    carts,
		products: products,
		orders:   orders,
		hooks:    hooks,
		pubSub:   pubSub,
		logger:   sysLogger,
	}
}

func (s *checkoutService) PlaceOrder(ctx context.Context, userId uuid.UUID, req *dto.CheckoutRequest) (*entity.Order, error) {
	cart, err := s.carts.Get(ctx, req.CartId)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrValidation)
	}

	payload := &hook.CheckoutValidationPayload{
		BillingCountry:  req.BillingCountry,
		ShippingCountry: req.ShippingCountry,
	}
	if err := s.hooks.Do(ctx, hook.CheckoutValidate, payload); err != nil {
		return nil, err
	}
	if rejections := payload.Errors(); len(rejections) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, strings.Join(rejections, "; "))
	}

	order := &entity.Order{
		Id:              uuid.New(),
		UserId:          userId,
		Status:          "completed",
		BillingCountry:  req.BillingCountry,
		ShippingCountry: req.ShippingCountry,
		Subtotal:        cart.Subtotal,
		Discount:        cart.Discount,
		Total:           cart.Total,
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ProductId: item.ProductId,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	for _, item := range order.Items {
		product, crossed, err := s.products.DecrementStock(ctx, item.ProductId, item.Quantity)
		if err != nil {
			s.logger.Error("Checkout", "Failed to decrement stock", map[string]interface{}{
				"order_id":   order.Id.String(),
				"product_id": item.ProductId.String(),
				"error":      err.Error(),
			})
			continue
		}
		if crossed {
			s.publish(events.TopicProductLowStock, events.ProductLowStockPayload{
				ProductId:   product.Id,
				ProductName: product.Name,
				Stock:       product.StockQuantity,
			})
		}
	}

	completed := events.OrderCompletedPayload{
		OrderId: order.Id,
		UserId:  order.UserId,
	}
	for _, item := range order.Items {
		completed.Items = append(completed.Items, events.OrderItemPayload{
			ProductId: item.ProductId,
			Quantity:  item.Quantity,
		})
	}
	s.publish(events.TopicOrderCompleted, completed)

	s.carts.Drop(cart.Id)

	return order, nil
}

func (s *checkoutService) publish(topic string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	if err := s.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), data)); err != nil {
		s.logger.Warn("Checkout", "Failed to publish event", map[string]interface{}{
			"topic": topic,
			"error": err.Error(),
		})
	}
}
