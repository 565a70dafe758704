package wishlist

import (
	"context"
	"path/filepath"
	"testing"

	"speedpress-addons-be/internal/model"
	"speedpress-addons-be/internal/repository/implementation"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestToggleItemRoundTrip(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "wishlist.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.WishlistItem{}))

	repo := implementation.NewWishlistRepository(db)
	ctx := context.Background()
	userId := uuid.New()
	productId := uuid.New()

	action, err := toggleItem(ctx, repo, userId, productId)
	require.NoError(t, err)
	assert.Equal(t, "added", action)

	ids, err := repo.FindProductIds(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{productId}, ids)

	action, err = toggleItem(ctx, repo, userId, productId)
	require.NoError(t, err)
	assert.Equal(t, "removed", action)

	ids, err = repo.FindProductIds(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestToggleIsScopedPerUser(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "wishlist.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.WishlistItem{}))

	repo := implementation.NewWishlistRepository(db)
	ctx := context.Background()
	productId := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	_, err = toggleItem(ctx, repo, alice, productId)
	require.NoError(t, err)

	has, err := repo.Has(ctx, bob, productId)
	require.NoError(t, err)
	assert.False(t, has)
}
