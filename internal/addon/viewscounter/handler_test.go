package viewscounter

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"speedpress-addons-be/internal/addon"
	"speedpress-addons-be/internal/entity"
	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/pkg/logger"
	"speedpress-addons-be/internal/repository/implementation"
	"speedpress-addons-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCountsViewsFromBus(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "views.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Product{}, &model.ProductMeta{}))

	productRepo := implementation.NewProductRepository(db)
	ctx := context.Background()

	product := &entity.Product{Id: uuid.New(), Name: "Ceramic Mug", Price: 9.0}
	require.NoError(t, productRepo.Create(ctx, product))

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	host := &addon.Host{
		Events:   pubSub,
		Products: productRepo,
		Logger:   logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "test.log")),
	}
	require.NoError(t, New().Register(ctx, host))

	for i := 0; i < 3; i++ {
		data, err := json.Marshal(events.ProductViewedPayload{ProductId: product.Id})
		require.NoError(t, err)
		require.NoError(t, pubSub.Publish(events.TopicProductViewed, message.NewMessage(watermill.NewUUID(), data)))
	}

	require.Eventually(t, func() bool {
		views, err := productRepo.GetMeta(ctx, product.Id, entity.MetaProductViews)
		return err == nil && views == 3
	}, 2*time.Second, 20*time.Millisecond)
}
