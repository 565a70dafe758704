// Package lowstock emails the store admin and notifies connected dashboards
// when a product's stock crosses below the configured threshold. The crossing
// itself is detected at checkout; this handler only consumes the resulting
// event.
package lowstock

import (
	"context"
	"encoding/json"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/pkg/events"
)

type handler struct{}

func New() addon.Handler {
	return &handler{}
}

func (h *handler) Slug() string {
	return manifest.SlugLowStockNotifier
}

func (h *handler) Register(ctx context.Context, host *addon.Host) error {
	messages, err := host.Events.Subscribe(ctx, events.TopicProductLowStock)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var payload events.ProductLowStockPayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				host.Logger.Error("LowStock", "Malformed low stock event", map[string]interface{}{
					"message_id": msg.UUID,
					"error":      err.Error(),
				})
				msg.Ack()
				continue
			}

			adminEmail := host.Config.Store.AdminEmail
			if adminEmail == "" {
				host.Logger.Warn("LowStock", "No admin email configured, alert dropped", map[string]interface{}{
					"product_id": payload.ProductId.String(),
				})
				msg.Ack()
				continue
			}

			if err := host.Mailer.SendLowStockAlert(adminEmail, payload.ProductName, payload.Stock); err != nil {
				host.Logger.Error("LowStock", "Failed to send low stock alert", map[string]interface{}{
					"product_id": payload.ProductId.String(),
					"error":      err.Error(),
				})
			}

			if host.Dashboard != nil {
				host.Dashboard.Broadcast("low_stock", map[string]interface{}{
					"product_id":   payload.ProductId.String(),
					"product_name": payload.ProductName,
					"stock":        payload.Stock,
				})
			}
			msg.Ack()
		}
	}()
	return nil
}
