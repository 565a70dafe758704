package events

import "time"

// Topic names for the in-process async bus.
const (
	TopicOrderCompleted  = "ORDER_COMPLETED"
	TopicProductViewed   = "PRODUCT_VIEWED"
	TopicProductLowStock = "PRODUCT_LOW_STOCK"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "ADDON_TOGGLED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent helps embed common logic if needed,
// strictly creating valid implementations is preferred though.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewAddonToggledEvent is emitted to the external bus whenever an admin flips
// an addon's enabled bit.
func NewAddonToggledEvent(slug string, enabled bool) Event {
	return BaseEvent{
		Type: "ADDON_TOGGLED",
		Data: map[string]interface{}{
			"addon_slug": slug,
			"enabled":    enabled,
		},
		OccurredAt: time.Now(),
	}
}
