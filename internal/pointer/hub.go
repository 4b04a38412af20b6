package pointer

// Listener receives pointer events published on a Hub.
type Listener func(Event)

// Hub is the process-wide set of move/up listeners. Listeners are expected
// to be registered only for the lifetime of a gesture.
type Hub struct {
	listeners map[int]Listener
	order     []int
	next      int
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[int]Listener)}
}

// Listen registers fn and returns its release function. Release is
// idempotent.
func (h *Hub) Listen(fn Listener) (release func()) {
	id := h.next
	h.next++
	h.listeners[id] = fn
	h.order = append(h.order, id)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(h.listeners, id)
		for i, v := range h.order {
			if v == id {
				h.order = append(h.order[:i], h.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers ev to every registered listener in registration order and
// returns how many were notified. Listeners may release themselves (or
// others) during delivery.
func (h *Hub) Publish(ev Event) int {
	ids := append([]int(nil), h.order...)
	n := 0
	for _, id := range ids {
		fn, ok := h.listeners[id]
		if !ok {
			continue
		}
		fn(ev)
		n++
	}
	return n
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	return len(h.listeners)
}
