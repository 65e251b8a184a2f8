package broadcast

import (
	"log"
	"sync"
)

// subscriberBuffer bounds how far a slow viewer may lag before events are
// dropped for it.
const subscriberBuffer = 16

// Hub is the in-process fan-out point between the product service and the
// connected realtime viewers. It implements Notifier.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
}

// Subscriber receives events on C until Unsubscribe closes it.
type Subscriber struct {
	C chan Event
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[*Subscriber]struct{}),
	}
}

// Subscribe registers a new viewer and returns its event channel.
func (h *Hub) Subscribe() *Subscriber {
	sub := &Subscriber{C: make(chan Event, subscriberBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[sub] = struct{}{}
	return sub
}

// Unsubscribe removes the viewer and closes its channel.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[sub]; ok {
		delete(h.subscribers, sub)
		close(sub.C)
	}
}

// Emit fans the event out to every subscriber without blocking. A viewer
// whose buffer is full misses the event; delivery is best effort.
func (h *Hub) Emit(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subscribers {
		select {
		case sub.C <- event:
		default:
			log.Printf("broadcast: dropping %s event for slow subscriber", event.Kind)
		}
	}
}

// Len reports how many viewers are currently subscribed.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
