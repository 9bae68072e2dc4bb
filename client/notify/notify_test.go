package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishWithNoListeners(t *testing.T) {
	ch := NewChannel()
	ch.Publish(Event{Kind: KindAdd, ProductTitle: "Ashwagandha"})
}

func TestListenersReceiveInSubscriptionOrder(t *testing.T) {
	ch := NewChannel()

	var order []string
	ch.Subscribe(func(Event) { order = append(order, "first") })
	ch.Subscribe(func(Event) { order = append(order, "second") })
	ch.Subscribe(func(Event) { order = append(order, "third") })

	ch.Publish(Event{Kind: KindClear})
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	ch := NewChannel()

	var got int
	unsubscribe := ch.Subscribe(func(Event) { got++ })

	ch.Publish(Event{Kind: KindAdd})
	unsubscribe()
	ch.Publish(Event{Kind: KindAdd})

	assert.Equal(t, 1, got)

	// A second unsubscribe is harmless.
	unsubscribe()
}

func TestNoDeliveryBeforeSubscription(t *testing.T) {
	ch := NewChannel()
	ch.Publish(Event{Kind: KindAdd, ProductTitle: "Chyawanprash"})

	var got []Event
	ch.Subscribe(func(e Event) { got = append(got, e) })
	assert.Empty(t, got, "events published before subscribing must not be replayed")

	ch.Publish(Event{Kind: KindRemove, ProductTitle: "Chyawanprash"})
	assert.Len(t, got, 1)
	assert.Equal(t, KindRemove, got[0].Kind)
}

func TestUnsubscribingDuringPublishDoesNotDeadlock(t *testing.T) {
	ch := NewChannel()

	var unsubscribe func()
	unsubscribe = ch.Subscribe(func(Event) { unsubscribe() })

	ch.Publish(Event{Kind: KindClear})
	ch.Publish(Event{Kind: KindClear})
}

func TestEventMessages(t *testing.T) {
	assert.Equal(t, "Neem Oil has been added to your cart!", Event{Kind: KindAdd, ProductTitle: "Neem Oil"}.Message())
	assert.Equal(t, "Neem Oil has been removed from your cart!", Event{Kind: KindRemove, ProductTitle: "Neem Oil"}.Message())
	assert.Equal(t, "Cart has been cleared!", Event{Kind: KindClear}.Message())
	assert.Equal(t, "Cart updated!", Event{}.Message())
}
