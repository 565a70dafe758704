// DTOs for the /spwa/v1 dashboard surface. Wire shapes match what the React
// dashboard already consumes, so field names follow the legacy contract.
package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AddonResponse is one card in the dashboard. "id" carries the slug.
type AddonResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Enabled     bool   `json:"enabled"`
}

// GetAddonsResponse groups addon cards by category-derived key
// (e.g. "cart-checkout-addons").
type GetAddonsResponse struct {
	Success bool                       `json:"success"`
	Addons  map[string][]AddonResponse `json:"addons,omitempty"`
	Message string                     `json:"message,omitempty"`
}

// AddonToggleRequest flips one addon's enabled bit.
type AddonToggleRequest struct {
	AddonSlug string    `json:"addon_slug" validate:"required"`
	Enabled   *BoolFlag `json:"enabled" validate:"required"`
}

type AddonToggleResponse struct {
	Success   bool   `json:"success"`
	AddonSlug string `json:"addon_slug,omitempty"`
	Enabled   bool   `json:"enabled"`
	Message   string `json:"message,omitempty"`
}

// AddonSettingsRequest replaces keys in an addon's settings bag.
type AddonSettingsRequest struct {
	Settings map[string]interface{} `json:"settings" validate:"required"`
}

// BoolFlag accepts the boolean-coercible encodings the legacy dashboard
// sends: true/false, 0/1 and their string forms.
type BoolFlag bool

func (b *BoolFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "true", "1", `"1"`, `"true"`:
		*b = true
		return nil
	case "false", "0", `"0"`, `"false"`:
		*b = false
		return nil
	}
	return fmt.Errorf("invalid boolean flag: %s", string(data))
}

func (b BoolFlag) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}
