// Package manifest is the hard-coded catalog of shipped addons. It is
// upserted into the catalog table on every boot: new slugs are inserted
// disabled, known slugs get their descriptive fields refreshed while the
// store owner's enabled choice stays untouched.
package manifest

import (
	"speedpress-addons-be/internal/entity"
)

// Addon slugs. The slug is the join key between the catalog row and the
// handler registered under the same name.
const (
	SlugProductViewsCounter    = "product-views-counter"
	SlugMaintenanceMode        = "maintenance-mode"
	SlugLowStockNotifier       = "low-stock-notifier"
	SlugProductPurchaseCounter = "product-purchase-counter"
	SlugBlockCountryForOrder   = "block-country-for-order"
	SlugForceLoginBeforeCart   = "force-login-before-cart"
	SlugWishlistLite           = "wishlist-lite"
	SlugAutoApplyCoupon        = "auto-apply-coupon"
)

// Default settings, used when the store owner has not configured the addon.
const (
	DefaultLowStockThreshold = 5
	DefaultCouponThreshold   = 100.0
)

// Shipped returns the manifest of addons bundled with this release.
func Shipped() []entity.ManifestEntry {
	return []entity.ManifestEntry{
		{
			Slug:        SlugProductViewsCounter,
			Title:       "Product Views Counter",
			Description: "Counts how many times a product is viewed or clicked by user.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugMaintenanceMode,
			Title:       "Maintenance Mode",
			Description: "Allows you to put your store in maintenance mode.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugLowStockNotifier,
			Title:       "Low Stock Notifier",
			Description: "Allows you to get notified when your product stock is lower.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugProductPurchaseCounter,
			Title:       "Product Purchase Counter",
			Description: "Counts how many times a product is purchased.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugBlockCountryForOrder,
			Title:       "Block Country For Order",
			Description: "Manage which country user can purchase your products.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugForceLoginBeforeCart,
			Title:       "Force Login Before Cart",
			Description: "Force user to log in before cart.",
			Type:        entity.AddonTypeFree,
			Category:    "general",
		},
		{
			Slug:        SlugWishlistLite,
			Title:       "Wishlist Lite",
			Description: "Allow users to favorite (wishlist) store products.",
			Type:        entity.AddonTypeFree,
			Category:    "product",
		},
		{
			Slug:        SlugAutoApplyCoupon,
			Title:       "Auto Apply Coupon",
			Description: "Automatically applies a coupon if the cart total exceeds a set threshold.",
			Type:        entity.AddonTypeFree,
			Category:    "cart-checkout",
		},
	}
}
