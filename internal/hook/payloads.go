package hook

import (
	"speedpress-addons-be/internal/entity"
)

// CartTotalsPayload is fired on cart.before_totals. Handlers may mutate the
// cart (apply or remove coupons, add notices) before totals are computed.
type CartTotalsPayload struct {
	Cart *entity.Cart
}

// CheckoutValidationPayload is fired on checkout.validate. Handlers reject a
// checkout by adding validation errors; any error fails the checkout.
type CheckoutValidationPayload struct {
	BillingCountry  string // ISO 3166-1 alpha-2 code
	ShippingCountry string

	errors []string
}

func (p *CheckoutValidationPayload) AddError(message string) {
	p.errors = append(p.errors, message)
}

func (p *CheckoutValidationPayload) Errors() []string {
	return p.errors
}
