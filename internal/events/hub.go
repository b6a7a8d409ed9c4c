package events

// Hub fans state out to subscribers. It is confined to the event loop, so
// callbacks run synchronously in subscription order.
type Hub[T any] struct {
	next int
	subs []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// Subscribe registers fn and returns a function that removes it.
func (h *Hub[T]) Subscribe(fn func(T)) func() {
	h.next++
	id := h.next
	h.subs = append(h.subs, subscriber[T]{id: id, fn: fn})
	return func() { h.unsubscribe(id) }
}

func (h *Hub[T]) unsubscribe(id int) {
	for i, sub := range h.subs {
		if sub.id == id {
			h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
			return
		}
	}
}

func (h *Hub[T]) Publish(value T) {
	subs := append([]subscriber[T](nil), h.subs...)
	for _, sub := range subs {
		sub.fn(value)
	}
}

func (h *Hub[T]) Len() int {
	return len(h.subs)
}
