package wishlist

import (
	"context"
	"testing"
	"time"

	"github.com/bhushankhairnar-QA/giftshop/internal/domain"
	"github.com/bhushankhairnar-QA/giftshop/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string) domain.Product {
	return domain.Product{ID: id, Title: "Gift " + id, UnitPrice: 50}
}

func TestToggle_AddThenRemove(t *testing.T) {
	ctx := context.Background()
	sut := New(ctx, storage.NewMemoryStore(), "")

	added := sut.Toggle(ctx, product("p1"))
	assert.True(t, added)
	assert.True(t, sut.Contains("p1"))

	added = sut.Toggle(ctx, product("p1"))
	assert.False(t, added)
	assert.False(t, sut.Contains("p1"))
	assert.True(t, sut.IsEmpty())
}

func TestAddItem_DuplicateIsNoOp(t *testing.T) {
	ctx := context.Background()
	sut := New(ctx, storage.NewMemoryStore(), "")

	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	sut.now = func() time.Time { return first }

	sut.AddItem(ctx, product("p1"))
	sut.now = func() time.Time { return second }
	sut.AddItem(ctx, product("p1"))

	items := sut.Items()
	require.Len(t, items, 1)
	// DateAdded is immutable; the re-add must not refresh it
	assert.Equal(t, first, items[0].DateAdded)
	assert.Equal(t, 1, sut.ItemCount())
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	sut := New(ctx, storage.NewMemoryStore(), "")

	sut.AddItem(ctx, product("p1"))
	sut.AddItem(ctx, product("p2"))

	sut.RemoveItem(ctx, "p1")
	assert.False(t, sut.Contains("p1"))
	assert.True(t, sut.Contains("p2"))

	assert.NotPanics(t, func() { sut.RemoveItem(ctx, "ghost") })
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	sut := New(ctx, storage.NewMemoryStore(), "")

	sut.AddItem(ctx, product("p1"))
	sut.AddItem(ctx, product("p2"))
	sut.Clear(ctx)

	assert.True(t, sut.IsEmpty())
	assert.Zero(t, sut.ItemCount())
}

func TestPersistence_IndependentOfCartKey(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore()

	sut := New(ctx, backend, DefaultStorageKey)
	sut.AddItem(ctx, product("p1"))

	// the cart key is untouched
	_, err := backend.Load(ctx, "giftShopCart")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	reloaded := New(ctx, backend, DefaultStorageKey)
	assert.True(t, reloaded.Contains("p1"))
	assert.Equal(t, sut.Items(), reloaded.Items())
}

func TestHydration_CorruptDataFallsBackToEmpty(t *testing.T) {
	ctx := context.Background()
	backend := storage.NewMemoryStore()
	require.NoError(t, backend.Save(ctx, DefaultStorageKey, []byte("not json")))

	sut := New(ctx, backend, DefaultStorageKey)
	assert.True(t, sut.IsEmpty())
}
