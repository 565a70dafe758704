// Package addon is the host side of the addon system. Each shipped addon
// implements Handler; the loader constructs and registers the enabled ones
// at boot, handing them the Host with everything they may attach to.
package addon

import (
	"context"

	"speedpress-addons-be/internal/config"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/pkg/mailer"
	"speedpress-addons-be/internal/repository/contract"
	"speedpress-addons-be/internal/service"

	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
)

// Handler is one addon. Register wires the addon into the host: hook
// callbacks, event subscriptions, storefront middleware and routes. It is
// called once at boot, only for enabled addons.
type Handler interface {
	Slug() string
	Register(ctx context.Context, host *Host) error
}

// Host bundles the attachment points and services an addon may use.
type Host struct {
	Hooks      *hook.Dispatcher
	Events     *gochannel.GoChannel
	Storefront fiber.Router

	Catalog   service.ICatalogService
	Settings  service.ISettingsService
	Products  contract.ProductRepository
	Wishlist  contract.WishlistRepository
	Mailer    mailer.IEmailService
	Dashboard service.Broadcaster

	Config *config.Config
	Logger logger.ILogger
}
