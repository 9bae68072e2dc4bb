// Package notify is the broadcast channel between the cart store and whatever
// renders user-facing notifications. Delivery is synchronous and unbuffered: a
// listener only sees events published while it is subscribed.
package notify

import "sync"

type Kind string

const (
	KindAdd    Kind = "add"
	KindRemove Kind = "remove"
	KindClear  Kind = "clear"
)

// Event describes the most recent cart mutation. ProductTitle and Quantity are
// set only when the kind carries them.
type Event struct {
	Kind         Kind
	ProductTitle string
	Quantity     int
}

// Message renders the notification text shown to the user.
func (e Event) Message() string {
	switch e.Kind {
	case KindAdd:
		return e.ProductTitle + " has been added to your cart!"
	case KindRemove:
		return e.ProductTitle + " has been removed from your cart!"
	case KindClear:
		return "Cart has been cleared!"
	default:
		return "Cart updated!"
	}
}

type subscriber struct {
	id int
	fn func(Event)
}

// Channel fans events out to the current listeners in subscription order.
// The zero value is not usable; call NewChannel.
type Channel struct {
	mu     sync.Mutex
	nextID int
	subs   []subscriber
}

func NewChannel() *Channel {
	return &Channel{}
}

// Subscribe registers fn and returns a function that removes it again.
// Unsubscribing twice is harmless.
func (c *Channel) Subscribe(fn func(Event)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs = append(c.subs, subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, sub := range c.subs {
			if sub.id == id {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every listener registered at call time.
// Listeners run on the caller's goroutine, outside the channel lock, so a
// listener may subscribe or unsubscribe without deadlocking.
func (c *Channel) Publish(event Event) {
	c.mu.Lock()
	subs := make([]subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, sub := range subs {
		sub.fn(event)
	}
}
