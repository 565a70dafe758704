// Package viewscounter tallies product page views, consuming view events
// off the async bus so the product page itself never waits on the write.
package viewscounter

import (
	"context"
	"encoding/json"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/pkg/events"
)

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugProductViewsCounter
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	messages, err := host.Events.Subscribe(ctx, events.TopicProductViewed)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var payload events.ProductViewedPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				host.Logger.Error("ViewsCounter", "Malformed product viewed event", map[string]interface{}{
					"message_id": msg.UUID,
					"error":      err.Error(),
				})
				msg.Ack()
				continue
			}

			if err := host.Products.IncrementMeta(ctx, payload.ProductId, entity.MetaProductViews, 1); err != nil {
				host.Logger.Error("ViewsCounter", "Failed to increment view count", map[string]interface{}{
					"product_id": payload.ProductId.String(),
					"error":      err.Error(),
				})
			}
			msg.Ack()
		}
	}()
	return nil
}
