package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

var neemOil = models.Product{ID: "PROD003", Title: "Neem Oil", Price: 89}

func TestAddIsIdempotent(t *testing.T) {
	wl := New(storage.NewMemoryStore())

	wl.Add(neemOil)
	wl.Add(neemOil)

	assert.Len(t, wl.Items(), 1)
	assert.True(t, wl.Contains("PROD003"))
}

func TestToggle(t *testing.T) {
	wl := New(storage.NewMemoryStore())

	assert.True(t, wl.Toggle(neemOil), "first toggle adds")
	assert.True(t, wl.Contains("PROD003"))

	assert.False(t, wl.Toggle(neemOil), "second toggle removes")
	assert.False(t, wl.Contains("PROD003"))
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	wl := New(storage.NewMemoryStore())
	wl.Remove("PROD404")
	assert.Empty(t, wl.Items())
}

func TestPersistsAcrossInstances(t *testing.T) {
	mem := storage.NewMemoryStore()

	first := New(mem)
	first.Add(neemOil)

	second := New(mem)
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Neem Oil", items[0].Title)
}

func TestClear(t *testing.T) {
	mem := storage.NewMemoryStore()
	wl := New(mem)
	wl.Add(neemOil)

	wl.Clear()
	assert.Empty(t, wl.Items())

	var persisted []models.Product
	require.True(t, mem.Get(storage.WishlistKey, &persisted))
	assert.Empty(t, persisted)
}
