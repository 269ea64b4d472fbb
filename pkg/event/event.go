package event

// Subscription identifies a listener so it can be removed later.
type Subscription uint64

type listener[T any] struct {
	id Subscription
	fn func(T)
}

// Channel is a multi-cast event. Listeners are only called when Raise is
// invoked, in the order they subscribed.
type Channel[T any] struct {
	next      Subscription
	listeners []listener[T]
}

func (c *Channel[T]) Subscribe(fn func(T)) Subscription {
	if fn == nil {
		return 0
	}

	c.next++
	c.listeners = append(c.listeners, listener[T]{id: c.next, fn: fn})
	return c.next
}

// Unsubscribe removes the listener registered under id. It reports whether
// a listener was removed.
func (c *Channel[T]) Unsubscribe(id Subscription) bool {
	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
			return true
		}
	}

	return false
}

func (c *Channel[T]) Clear() {
	c.listeners = nil
}

func (c *Channel[T]) Len() int {
	return len(c.listeners)
}

// Raise calls every listener with value. Listeners added or removed while
// raising take effect on the next Raise.
func (c *Channel[T]) Raise(value T) {
	for _, l := range c.listeners {
		l.fn(value)
	}
}
