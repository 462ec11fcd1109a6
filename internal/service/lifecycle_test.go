package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"go-dessert-api/internal/domain"
	"go-dessert-api/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Dessert{}))
	return db
}

func newDessertLifecycle(t *testing.T) (*Lifecycle[domain.Dessert], *repo.Store[domain.Dessert]) {
	t.Helper()
	store := repo.NewStore[domain.Dessert](newTestDB(t))
	return NewLifecycle(store, "desserts", zap.NewNop()), store
}

func seedDessert(t *testing.T, store *repo.Store[domain.Dessert]) *domain.Dessert {
	t.Helper()
	d := &domain.Dessert{
		Name:        "flan",
		Description: "eggs and milk",
		Ingredients: "eggs, milk, sugar",
		Difficulty:  "easy",
		Duration:    "45m",
	}
	require.NoError(t, store.Insert(context.Background(), d))
	return d
}

func TestSoftDeleteThenRestore(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	deleted, err := lc.SoftDelete(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)

	restored, err := lc.Restore(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
	// 时间戳之外的字段恢复后保持原样
	assert.Equal(t, d.Name, restored.Name)
	assert.Equal(t, d.Description, restored.Description)
	assert.Equal(t, d.Ingredients, restored.Ingredients)
}

func TestSoftDeleteTwiceRefreshesTimestamp(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	first, err := lc.SoftDelete(ctx, d.ID)
	require.NoError(t, err)
	second, err := lc.SoftDelete(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, second.DeletedAt)
	assert.False(t, second.DeletedAt.Before(*first.DeletedAt))
}

func TestRestoreActiveRecordIsNoOp(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	restored, err := lc.Restore(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, restored.DeletedAt)
}

func TestPurgeIsTerminal(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	purged, err := lc.Purge(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, purged.ID)

	// Gone 之后任何操作都是 NotFound
	_, err = lc.SoftDelete(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = lc.Restore(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = lc.Update(ctx, d.ID, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = lc.Purge(ctx, d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLifecycleNotFound(t *testing.T) {
	lc, _ := newDessertLifecycle(t)
	ctx := context.Background()

	_, err := lc.SoftDelete(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = lc.Restore(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = lc.Purge(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateSkipsZeroValues(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	got, err := lc.Update(ctx, d.ID, map[string]any{
		"name":        "flan de coco", // truthy，落库
		"description": "",             // 空串跳过
		"difficulty":  "",             // 空串跳过
	})
	require.NoError(t, err)
	assert.Equal(t, "flan de coco", got.Name)
	assert.Equal(t, "eggs and milk", got.Description)
	assert.Equal(t, "easy", got.Difficulty)
}

func TestUpdateAllZeroValuesLeavesRecordUntouched(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	d := seedDessert(t, store)

	got, err := lc.Update(ctx, d.ID, map[string]any{
		"name":        "",
		"description": "",
	})
	require.NoError(t, err)
	assert.Equal(t, d.Name, got.Name)
	assert.Equal(t, d.Description, got.Description)
}

func TestListAllIncludesSoftDeleted(t *testing.T) {
	lc, store := newDessertLifecycle(t)
	ctx := context.Background()
	a := seedDessert(t, store)
	b := &domain.Dessert{Name: "brownie"}
	require.NoError(t, store.Insert(ctx, b))

	_, err := lc.SoftDelete(ctx, a.ID)
	require.NoError(t, err)

	items, err := lc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestListAllEmptyIsNotError(t *testing.T) {
	lc, _ := newDessertLifecycle(t)

	items, err := lc.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
