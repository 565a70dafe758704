package service

import (
	"context"
	"fmt"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/contract"
	"speedpress-addons-be/internal/repository/memory"

	"github.com/google/uuid"
)

type ICartService interface {
	AddItem(ctx context.Context, cartId string, productId uuid.UUID, quantity int) (*entity.Cart, error)
	Get(ctx context.Context, cartId string) (*entity.Cart, error)
	// Calculate recomputes subtotal, discount and total, firing the
	// cart.before_totals hook so enabled addons can adjust the cart first.
	Calculate(ctx context.Context, cart *entity.Cart)
	Save(cart *entity.Cart)
	Drop(cartId string)
}

type cartService struct {
	carts    *memory.CartRepository
	products contract.ProductRepository
	coupons  contract.CouponRepository
	hooks    *hook.Dispatcher
	logger   logger.ILogger
}

func NewCartService(
	carts *memory.CartRepository,
	products contract.ProductRepository,
	coupons contract.CouponRepository,
	hooks *hook.Dispatcher,
	sysLogger logger.ILogger,
) ICartService {
	return &cartService{
		carts:    carts,
		products: products,
		coupons:  coupons,
		hooks:    hooks,
		logger:   sysLogger,
	}
}

func (s *cartService) AddItem(ctx context.Context, cartId string, productId uuid.UUID, quantity int) (*entity.Cart, error) {
	product, err := s.products.FindById(ctx, productId)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	cart, found := s.carts.Get(cartId)
	if !found {
		cart = &entity.Cart{Id: uuid.NewString()}
	}

	cart.AddItem(entity.CartItem{
		ProductId: product.Id,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  quantity,
	})

	s.Calculate(ctx, cart)
	s.carts.Save(cart)
	return cart, nil
}

func (s *cartService) Get(ctx context.Context, cartId string) (*entity.Cart, error) {
	cart, found := s.carts.Get(cartId)
	if !found {
		return nil, ErrCartNotFound
	}
	s.Calculate(ctx, cart)
	s.carts.Save(cart)
	return cart, nil
}

func (s *cartService) Calculate(ctx context.Context, cart *entity.Cart) {
	cart.Notices = nil
	cart.Subtotal = cart.SubtotalExTax()

	// Addons may apply or remove coupons here. A failing hook must not take
	// the cart down with it.
	if err := s.hooks.Do(ctx, hook.CartBeforeTotals, &hook.CartTotalsPayload{Cart: cart}); err != nil {
		s.logger.Error("Cart", "Cart totals hook failed", map[string]interface{}{
			"cart_id": cart.Id,
			"error":   err.Error(),
		})
	}

	var discount float64
	valid := cart.Coupons[:0]
	for _, code := range cart.Coupons {
		coupon, err := s.coupons.FindByCode(ctx, code)
		if err != nil {
			s.logger.Error("Cart", "Failed to resolve coupon", map[string]interface{}{
				"cart_id": cart.Id,
				"coupon":  code,
				"error":   err.Error(),
			})
			continue
		}
		if coupon == nil {
			cart.AddNotice(entity.NoticeInfo, fmt.Sprintf("Coupon %q is not valid and was removed.", code))
			continue
		}
		valid = append(valid, code)
		discount += coupon.DiscountFor(cart.Subtotal)
	}
	cart.Coupons = valid

	if discount > cart.Subtotal {
		discount = cart.Subtotal
	}
	cart.Discount = discount
	cart.Total = cart.Subtotal - discount
}

func (s *cartService) Save(cart *entity.Cart) {
	s.carts.Save(cart)
}

func (s *cartService) Drop(cartId string) {
	s.carts.Delete(cartId)
}
