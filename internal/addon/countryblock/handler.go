// Package countryblock rejects checkouts whose billing or shipping country
// is on the store owner's block list. The list is configured by country
// display name and matched case-insensitively.
package countryblock

import (
	"context"
	"strings"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/manifest"
)

const blockedMessage = "We do not accept orders from your country."

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugBlockCountryForOrder
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	host.Hooks.Add(hook.CheckoutValidate, func(ctx context.Context, payload any) error {
		validation, ok := payload.(*hook.CheckoutValidationPayload)
		if !ok {
			return nil
		}
		if h.isBlocked(ctx, host, validation.BillingCountry) || h.isBlocked(ctx, host, validation.ShippingCountry) {
			validation.AddError(blockedMessage)
		}
		return nil
	})
	return nil
}

func (h *handler) isBlocked(ctx context.Context, host *addon.Host, countryCode string) bool {
	name, known := CountryName(countryCode)
	if !known {
		return false
	}

	settings, err := host.Settings.GetAll(ctx, manifest.SlugBlockCountryForOrder)
	if err != nil {
		host.Logger.Error("CountryBlock", "Failed to read blocked country list", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}

	blocked, _ := settings["blocked_countries"].([]interface{})
	for _, raw := range blocked {
		entry, ok := raw.(string)
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(entry), name) {
			return true
		}
	}
	return false
}
