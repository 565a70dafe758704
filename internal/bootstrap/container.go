package bootstrap

import (
	"context"
	"log"
	"time"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/addon/autocoupon"
	"speedpress-addons-be/internal/addon/countryblock"
	"speedpress-addons-be/internal/addon/forcelogin"
	"speedpress-addons-be/internal/addon/lowstock"
	"speedpress-addons-be/internal/addon/maintenance"
	"speedpress-addons-be/internal/addon/purchasecounter"
	"speedpress-addons-be/internal/addon/viewscounter"
	"speedpress-addons-be/internal/addon/wishlist"
	"speedpress-addons-be/internal/config"
	"speedpress-addons-be/internal/controller"
	"speedpress-addons-be/internal/handler"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/pkg/mailer"
	"speedpress-addons-be/internal/repository/implementation"
	"speedpress-addons-be/internal/repository/memory"
	"speedpress-addons-be/internal/service"
	"speedpress-addons-be/internal/websocket"
	pktNats "speedpress-addons-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController     controller.IAuthController
	AddonController    controller.IAddonController
	ProductController  controller.IProductController
	CartController     controller.ICartController
	CheckoutController controller.ICheckoutController

	// WebSockets
	DashboardHandler *handler.DashboardHandler
	WebSocketHub     *websocket.Hub

	// Services exposed for boot-time work (manifest upsert)
	CatalogService service.ICatalogService

	cfg    *config.Config
	hooks  *hook.Dispatcher
	pubSub *gochannel.GoChannel
	loader *addon.Loader
	host   *addon.Host
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	hooks := hook.NewDispatcher()

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/dashboard.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 3. Repositories
	addonRepo := implementation.NewAddonRepository(db)
	settingRepo := implementation.NewAddonSettingRepository(db)
	userRepo := implementation.NewUserRepository(db)
	productRepo := implementation.NewProductRepository(db)
	couponRepo := implementation.NewCouponRepository(db)
	orderRepo := implementation.NewOrderRepository(db)
	wishlistRepo := implementation.NewWishlistRepository(db)
	cartRepo := memory.NewCartRepository()

	// 4. Services
	catalogService := service.NewCatalogService(
		addonRepo,
		time.Duration(cfg.Store.FlagCacheTTL)*time.Second,
		rdb,
		cfg.Store.ToggleChannel,
		natsPub,
		wsHub,
		sysLogger,
	)
	go catalogService.WatchToggleInvalidations(context.Background())

	settingsService := service.NewSettingsService(settingRepo, addonRepo)
	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo, catalogService, settingsService, pubSub, sysLogger)
	cartService := service.NewCartService(cartRepo, productRepo, couponRepo, hooks, sysLogger)
	checkoutService := service.NewCheckoutService(cartService, productService, orderRepo, hooks, pubSub, sysLogger)

	// 5. Addon registry. Slugs here must match the shipped manifest; the
	// catalog decides at boot which of these actually load.
	registry := addon.NewRegistry()
	registry.Register(manifest.SlugProductViewsCounter, viewscounter.New)
	registry.Register(manifest.SlugMaintenanceMode, maintenance.New)
	registry.Register(manifest.SlugLowStockNotifier, lowstock.New)
	registry.Register(manifest.SlugProductPurchaseCounter, purchasecounter.New)
	registry.Register(manifest.SlugBlockCountryForOrder, countryblock.New)
	registry.Register(manifest.SlugForceLoginBeforeCart, forcelogin.New)
	registry.Register(manifest.SlugWishlistLite, wishlist.New)
	registry.Register(manifest.SlugAutoApplyCoupon, autocoupon.New)

	loader := addon.NewLoader(registry, catalogService, sysLogger)
	host := &addon.Host{
		Hooks:     hooks,
		Events:    pubSub,
		Catalog:   catalogService,
		Settings:  settingsService,
		Products:  productRepo,
		Wishlist:  wishlistRepo,
		Mailer:    emailService,
		Dashboard: wsHub,
		Config:    cfg,
		Logger:    sysLogger,
	}

	return &Container{
		AuthController:     controller.NewAuthController(authService),
		AddonController:    controller.NewAddonController(catalogService, settingsService),
		ProductController:  controller.NewProductController(productService),
		CartController:     controller.NewCartController(cartService),
		CheckoutController: controller.NewCheckoutController(checkoutService),

		DashboardHandler: handler.NewDashboardHandler(wsHub, wsLogger),
		WebSocketHub:     wsHub,

		CatalogService: catalogService,

		cfg:    cfg,
		hooks:  hooks,
		pubSub: pubSub,
		loader: loader,
		host:   host,
	}
}

// LoadAddons registers enabled addons against the storefront router. Must
// run before storefront controllers register their routes so addon
// middleware sits in front of them.
func (c *Container) LoadAddons(ctx context.Context, storefront fiber.Router) ([]string, error) {
	c.host.Storefront = storefront
	return c.loader.LoadEnabled(ctx, c.host)
}
