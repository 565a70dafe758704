package service

import (
	"context"
	"encoding/json"

	"speedpress-addons-be/internal/dto"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/manifest"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/contract"
	"speedpress-addons-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IProductService interface {
	Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error)
	// GetDetail builds the storefront product page and fires the
	// fire-and-forget product-viewed event.
	GetDetail(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error)
	ListAdmin(ctx context.Context) ([]dto.AdminProductResponse, error)
	// DecrementStock reduces stock after a purchase and reports whether the
	// new quantity crossed at-or-below the low stock threshold. The crossing
	// check guarantees the low stock event fires once per crossing, never on
	// every sale below it.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, bool, error)
}

type productService struct {
	products contract.ProductRepository
	catalog  ICatalogService
	settings ISettingsService
	pubSub   *gochannel.GoChannel
	logger   logger.ILogger
}

func NewProductService(
	products contract.ProductRepository,
	catalog ICatalogService,
	settings ISettingsService,
	pubSub *gochannel.GoChannel,
	sysLogger logger.ILogger,
) IProductService {
	return &productService{
		products: products,
		catalog:  catalog,
		settings: settings,
		pubSub:   pubSub,
		logger:   sysLogger,
	}
}

func (s *productService) Create(ctx context.Context, req *dto.CreateProductRequest) (*entity.Product, error) {
	manageStock := true
	if req.ManageStock != nil {
		manageStock = *req.ManageStock
	}

	product := &entity.Product{
		Id:            uuid.New(),
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ManageStock:   manageStock,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetDetail(ctx context.Context, id uuid.UUID) (*dto.ProductDetailResponse, error) {
	product, err := s.products.FindById(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	resp := &dto.ProductDetailResponse{
		Id:            product.Id,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
	}

	// Counters are part of the product summary only while their addon is on,
	// and are suppressed at zero.
	if s.catalog.IsEnabled(ctx, manifest.SlugProductViewsCounter) {
		if views, err := s.products.GetMeta(ctx, id, entity.MetaProductViews); err == nil && views > 0 {
			resp.Views = &views
		}
	}
	if s.catalog.IsEnabled(ctx, manifest.SlugProductPurchaseCounter) {
		if purchases, err := s.products.GetMeta(ctx, id, entity.MetaPurchaseCount); err == nil && purchases > 0 {
			resp.Purchases = &purchases
		}
	}

	s.publishViewed(product.Id)

	return resp, nil
}

func (s *productService) ListAdmin(ctx context.Context) ([]dto.AdminProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.AdminProductResponse, 0, len(products))
	for _, product := range products {
		views, err := s.products.GetMeta(ctx, product.Id, entity.MetaProductViews)
		if err != nil {
			return nil, err
		}
		responses = append(responses, dto.AdminProductResponse{
			Id:            product.Id,
			Name:          product.Name,
			Price:         product.Price,
			StockQuantity: product.StockQuantity,
			ManageStock:   product.ManageStock,
			Views:         views,
		})
	}
	return responses, nil
}

func (s *productService) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Product, bool, error) {
	product, err := s.products.FindById(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if product == nil {
		return nil, false, ErrProductNotFound
	}
	if !product.ManageStock {
		return product, false, nil
	}

	oldQuantity := product.StockQuantity
	newQuantity := oldQuantity - quantity
	if newQuantity < 0 {
		newQuantity = 0
	}
	if err := s.products.UpdateStock(ctx, id, newQuantity); err != nil {
		return nil, false, err
	}
	product.StockQuantity = newQuantity

	threshold := s.settings.Int(ctx, manifest.SlugLowStockNotifier, "threshold", manifest.DefaultLowStockThreshold)
	crossed := oldQuantity > threshold && newQuantity <= threshold

	return product, crossed, nil
}

// publishViewed is fire-and-forget; a dropped view is not worth failing a
// product page for.
func (s *productService) publishViewed(id uuid.UUID) {
	data, err := json.Marshal(events.ProductViewedPayload{ProductId: id})
	if err != nil {
		return
	}
	if err := s.pubSub.Publish(events.TopicProductViewed, message.NewMessage(watermill.NewUUID(), data)); err != nil {
		s.logger.Warn("Product", "Failed to publish product viewed event", map[string]interface{}{
			"product_id": id.String(),
			"error":      err.Error(),
		})
	}
}
