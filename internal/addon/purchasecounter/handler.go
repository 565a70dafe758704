// Package purchasecounter tallies how many units of each product have been
// purchased, consuming completed orders off the async bus.
package purchasecounter

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
	return manifest.SlugProductPurchaseCounter
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	messages, err := host.Events.Subscribe(ctx, events.TopicOrderCompleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var payload events.OrderCompletedPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				host.Logger.Error("PurchaseCounter", "Malformed order completed event", map[string]interface{}{
					"message_id": msg.UUID,
					"error":      err.Error(),
				})
				msg.Ack()
				continue
			}

			for _, item := range payload.Items {
				if err := host.Products.IncrementMeta(ctx, item.ProductId, entity.MetaPurchaseCount, int64(item.Quantity)); err != nil {
					host.Logger.Error("PurchaseCounter", "Failed to increment purchase count", map[string]interface{}{
						"product_id": item.ProductId.String(),
						"error":      err.Error(),
					})
				}
			}
			msg.Ack()
		}
	}()
	return nil
}
