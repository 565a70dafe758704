package service

import (
	"context"
	"path/filepath"
	"testing"

	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/hook"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/implementation"
	"speedpress-addons-be/internal/repository/memory"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type cartFixture struct {
	db    *gorm.DB
	carts ICartService
	hooks *hook.Dispatcher
}

func newCartFixture(t *testing.T) (*cartFixture, uuid.UUID) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "cart.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.Coupon{}))

	productRepo := implementation.NewProductRepository(db)
	couponRepo := implementation.NewCouponRepository(db)
	hooks := hook.NewDispatcher()
	sysLogger := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log"))

	carts := NewCartService(memory.NewCartRepository(), productRepo, couponRepo, hooks, sysLogger)

	product := &entity.Product{Id: uuid.New(), Name: "Canvas Tote Bag", Price: 25.0, StockQuantity: 10, ManageStock: true}
	require.NoError(t, productRepo.Create(context.Background(), product))

	return &cartFixture{db: db, carts: carts, hooks: hooks}, product.Id
}

func (f *cartFixture) seedCoupon(t *testing.T, code string, kind entity.DiscountType, amount float64) {
	t.Helper()
	require.NoError(t, f.db.Create(&model.Coupon{
		Id: uuid.New(), Code: code, DiscountType: string(kind), Amount: amount, Active: true,
	}).Error)
}

func TestAddItemCreatesCartAndComputesTotals(t *testing.T) {
	f, productId := newCartFixture(t)

	cart, err := f.carts.AddItem(context.Background(), "", productId, 2)
	require.NoError(t, err)

	assert.NotEmpty(t, cart.Id)
	assert.Equal(t, 50.0, cart.Subtotal)
	assert.Equal(t, 50.0, cart.Total)
}

func TestAddItemMergesDuplicateLines(t *testing.T) {
	f, productId := newCartFixture(t)
	ctx := context.Background()

	cart, err := f.carts.AddItem(ctx, "", productId, 1)
	require.NoError(t, err)
	cart, err = f.carts.AddItem(ctx, cart.Id, productId, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestAddItemUnknownProduct(t *testing.T) {
	f, _ := newCartFixture(t)

	_, err := f.carts.AddItem(context.Background(), "", uuid.New(), 1)

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCalculateAppliesValidCoupon(t *testing.T) {
	f, productId := newCartFixture(t)
	ctx := context.Background()
	f.seedCoupon(t, "SAVE15", entity.DiscountPercent, 15)

	cart, err := f.carts.AddItem(ctx, "", productId, 4) // subtotal 100
	require.NoError(t, err)
	cart.ApplyCoupon("SAVE15")

	f.carts.Calculate(ctx, cart)

	assert.Equal(t, 15.0, cart.Discount)
	assert.Equal(t, 85.0, cart.Total)
}

func TestCalculateRemovesUnknownCoupon(t *testing.T) {
	f, productId := newCartFixture(t)
	ctx := context.Background()

	cart, err := f.carts.AddItem(ctx, "", productId, 1)
	require.NoError(t, err)
	cart.ApplyCoupon("BOGUS")

	f.carts.Calculate(ctx, cart)

	assert.Empty(t, cart.Coupons)
	assert.Zero(t, cart.Discount)
	require.Len(t, cart.Notices, 1)
	assert.Contains(t, cart.Notices[0].Message, "BOGUS")
}

func TestCalculateFiresTotalsHook(t *testing.T) {
	f, productId := newCartFixture(t)
	ctx := context.Background()
	f.seedCoupon(t, "WELCOME10", entity.DiscountFixed, 10)

	f.hooks.Add(hook.CartBeforeTotals, func(ctx context.Context, payload any) error {
		payload.(*hook.CartTotalsPayload).Cart.ApplyCoupon("WELCOME10")
		return nil
	})

	cart, err := f.carts.AddItem(ctx, "", productId, 2) // subtotal 50
	require.NoError(t, err)

	assert.Equal(t, 10.0, cart.Discount)
	assert.Equal(t, 40.0, cart.Total)
}

func TestCalculateClampsDiscountToSubtotal(t *testing.T) {
	f, productId := newCartFixture(t)
	ctx := context.Background()
	f.seedCoupon(t, "MEGA", entity.DiscountFixed, 500)

	cart, err := f.carts.AddItem(ctx, "", productId, 1) // subtotal 25
	require.NoError(t, err)
	cart.ApplyCoupon("MEGA")

	f.carts.Calculate(ctx, cart)

	assert.Equal(t, 25.0, cart.Discount)
	assert.Zero(t, cart.Total)
}
