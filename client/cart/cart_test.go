package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanjeevika-shop/client/notify"
	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

var (
	ashwagandha = models.Product{ID: "PROD001", Title: "Ashwagandha Capsules", Price: 106, Image: "/images/ashwagandha.jpg", Description: "Stress relief support"}
	chyawan     = models.Product{ID: "PROD002", Title: "Chyawanprash", Price: 249, Image: "/images/chyawanprash.jpg"}
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore, *[]notify.Event) {
	t.Helper()
	mem := storage.NewMemoryStore()
	events := notify.NewChannel()
	var received []notify.Event
	events.Subscribe(func(e notify.Event) { received = append(received, e) })
	return New(mem, events), mem, &received
}

func TestAddCreatesLineWithSnapshot(t *testing.T) {
	cart, _, events := newTestStore(t)

	cart.Add(ashwagandha, 2)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "PROD001", items[0].ProductID)
	assert.Equal(t, "Ashwagandha Capsules", items[0].Title)
	assert.Equal(t, 106.0, items[0].Price)
	assert.Equal(t, "/images/ashwagandha.jpg", items[0].Image)
	assert.Equal(t, 2, items[0].Quantity)

	require.Len(t, *events, 1)
	assert.Equal(t, notify.KindAdd, (*events)[0].Kind)
	assert.Equal(t, "Ashwagandha Capsules", (*events)[0].ProductTitle)
	assert.Equal(t, 2, (*events)[0].Quantity)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	cart, _, events := newTestStore(t)

	cart.Add(ashwagandha, 2)
	cart.Add(ashwagandha, 3)

	items := cart.Items()
	require.Len(t, items, 1, "adding the same product twice must not create a second line")
	assert.Equal(t, 5, items[0].Quantity)

	// The second event carries the added quantity, not the new total.
	require.Len(t, *events, 2)
	assert.Equal(t, 3, (*events)[1].Quantity)
}

func TestAddClampsNonPositiveQuantity(t *testing.T) {
	cart, _, _ := newTestStore(t)

	cart.Add(ashwagandha, 0)
	assert.Equal(t, 1, cart.Quantity("PROD001"))

	cart.Add(chyawan, -4)
	assert.Equal(t, 1, cart.Quantity("PROD002"))
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	cart, _, _ := newTestStore(t)

	cart.Add(ashwagandha, 1)
	cart.Add(chyawan, 1)
	cart.Add(ashwagandha, 1)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "PROD001", items[0].ProductID)
	assert.Equal(t, "PROD002", items[1].ProductID)
}

func TestRemoveEmitsEventOnlyWhenPresent(t *testing.T) {
	cart, _, events := newTestStore(t)

	cart.Add(ashwagandha, 1)
	*events = nil

	cart.Remove("PROD001")
	require.Len(t, *events, 1)
	assert.Equal(t, notify.KindRemove, (*events)[0].Kind)
	assert.Equal(t, "Ashwagandha Capsules", (*events)[0].ProductTitle)

	*events = nil
	cart.Remove("PROD404")
	assert.Empty(t, *events, "removing an absent product must not notify")
}

func TestUpdateQuantitySetsWithoutEvent(t *testing.T) {
	cart, _, events := newTestStore(t)

	cart.Add(ashwagandha, 1)
	*events = nil

	cart.UpdateQuantity("PROD001", 7)
	assert.Equal(t, 7, cart.Quantity("PROD001"))
	assert.Empty(t, *events, "a plain quantity change must not notify")
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, quantity := range []int{0, -5} {
		cart, mem, events := newTestStore(t)
		cart.Add(ashwagandha, 3)
		*events = nil

		cart.UpdateQuantity("PROD001", quantity)

		assert.False(t, cart.Contains("PROD001"))
		require.Len(t, *events, 1, "quantity %d must behave exactly like a removal", quantity)
		assert.Equal(t, notify.KindRemove, (*events)[0].Kind)

		var persisted []models.CartLine
		require.True(t, mem.Get(storage.CartKey, &persisted))
		assert.Empty(t, persisted)
	}
}

func TestDerivedTotals(t *testing.T) {
	cart, _, _ := newTestStore(t)

	cart.Add(ashwagandha, 2) // 212
	cart.Add(chyawan, 1)     // 249

	assert.InDelta(t, 461.0, cart.TotalPrice(), 1e-9)
	assert.Equal(t, 3, cart.ItemCount())

	cart.UpdateQuantity("PROD002", 3)
	assert.InDelta(t, 959.0, cart.TotalPrice(), 1e-9)
	assert.Equal(t, 5, cart.ItemCount())

	cart.Clear()
	assert.Zero(t, cart.TotalPrice())
	assert.Zero(t, cart.ItemCount())
}

func TestEveryMutationPersistsFullSequence(t *testing.T) {
	cart, mem, _ := newTestStore(t)

	cart.Add(ashwagandha, 2)
	cart.Add(chyawan, 1)

	var persisted []models.CartLine
	require.True(t, mem.Get(storage.CartKey, &persisted))
	require.Len(t, persisted, 2)
	assert.Equal(t, 2, persisted[0].Quantity)

	cart.Remove("PROD001")
	require.True(t, mem.Get(storage.CartKey, &persisted))
	require.Len(t, persisted, 1)
	assert.Equal(t, "PROD002", persisted[0].ProductID)
}

func TestClearPersistsEmptySequence(t *testing.T) {
	cart, mem, events := newTestStore(t)

	cart.Add(ashwagandha, 1)
	*events = nil
	cart.Clear()

	var persisted []models.CartLine
	require.True(t, mem.Get(storage.CartKey, &persisted))
	assert.Empty(t, persisted)

	require.Len(t, *events, 1)
	assert.Equal(t, notify.KindClear, (*events)[0].Kind)
}

func TestNewStoreRestoresPersistedCart(t *testing.T) {
	mem := storage.NewMemoryStore()

	first := New(mem, nil)
	first.Add(ashwagandha, 2)
	first.Add(chyawan, 1)

	second := New(mem, nil)
	items := second.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "PROD001", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 3, second.ItemCount())
}

func TestNewStoreWithNoPersistedCartIsEmpty(t *testing.T) {
	cart := New(storage.NewMemoryStore(), nil)
	assert.Empty(t, cart.Items())
	assert.Zero(t, cart.ItemCount())
}

func TestSingleLineLifecycle(t *testing.T) {
	cart, _, _ := newTestStore(t)
	p1 := models.Product{ID: "P1", Title: "Single", Price: 100}

	cart.Add(p1, 2)
	assert.Equal(t, 2, cart.ItemCount())
	assert.InDelta(t, 200.0, cart.TotalPrice(), 1e-9)

	cart.UpdateQuantity("P1", 5)
	assert.Equal(t, 5, cart.ItemCount())
	assert.InDelta(t, 500.0, cart.TotalPrice(), 1e-9)

	cart.Remove("P1")
	assert.Zero(t, cart.ItemCount())
	assert.Zero(t, cart.TotalPrice())
}

func TestUpdateQuantityForAbsentProductIsNoOp(t *testing.T) {
	cart, _, events := newTestStore(t)
	cart.Add(ashwagandha, 1)
	*events = nil

	cart.UpdateQuantity("PROD404", 5)

	assert.Equal(t, 1, cart.ItemCount())
	assert.Empty(t, *events)
}

func TestNilEventChannelIsAllowed(t *testing.T) {
	cart := New(storage.NewMemoryStore(), nil)
	cart.Add(ashwagandha, 1)
	cart.Remove("PROD001")
	cart.Clear()
}
