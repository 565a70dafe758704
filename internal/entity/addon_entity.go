// Domain entity for catalog addons
package entity

import (
	"time"
)

type AddonType string

const (
	AddonTypeFree    AddonType = "free"
	AddonTypePremium AddonType = "premium"
)

// Addon is one independently toggleable storefront feature.
type Addon struct {
	Id          uint64
	Slug        string // Stable identifier: auto-apply-coupon, wishlist-lite, ...
	Title       string // Display name: "Auto Apply Coupon"
	Description string
	Type        AddonType
	Category    string // Grouping key: general, product, cart-checkout
	Enabled     bool   // The only field a user mutates through the toggle surface
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ManifestEntry is the shipped, descriptive part of an addon. Upserting a
// manifest never touches the user's Enabled choice.
type ManifestEntry struct {
	Slug        string
	Title       string
	Description string
	Type        AddonType
	Category    string
}
