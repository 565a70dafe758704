// Package autocoupon applies a configured coupon to the cart automatically
// once its subtotal reaches a threshold, and removes it again when the cart
// drops back below.
package autocoupon

import (
	"context"
	"fmt"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/manifest"
)

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugAutoApplyCoupon
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	host.Hooks.Add(hook.CartBeforeTotals, func(ctx context.Context, payload any) error {
		totals, ok := payload.(*hook.CartTotalsPayload)
		if !ok {
			return nil
		}
		h.apply(ctx, host, totals.Cart)
		return nil
	})
	return nil
}

func (h *handler) apply(ctx context.Context, host *addon.Host, cart *entity.Cart) {
	code := host.Settings.String(ctx, manifest.SlugAutoApplyCoupon, "coupon_code", "")
	if code == "" {
		return
	}
	threshold := host.Settings.Float(ctx, manifest.SlugAutoApplyCoupon, "threshold", manifest.DefaultCouponThreshold)

	subtotal := cart.SubtotalExTax()
	applied := cart.HasCoupon(code)

	switch {
	case subtotal >= threshold && !applied:
		cart.ApplyCoupon(code)
		cart.AddNotice(entity.NoticeSuccess, fmt.Sprintf("Coupon %q applied automatically.", code))
	case subtotal < threshold && applied:
		cart.RemoveCoupon(code)
		cart.AddNotice(entity.NoticeInfo, fmt.Sprintf("Coupon %q removed: cart total fell below the required amount.", code))
	}
}
