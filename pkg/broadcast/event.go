package broadcast

import (
	"time"

	"tienda/internal/models"

	"github.com/google/uuid"
)

// EventKind tells viewers what happened to a product.
type EventKind string

const (
	EventCreate EventKind = "create"
	EventUpdate EventKind = "update"
	EventDelete EventKind = "delete"
)

// Event is the envelope emitted after a successful catalog mutation.
// Create and update carry the full record; delete carries only the id.
type Event struct {
	EventID    string          `json:"event_id"`
	Kind       EventKind       `json:"type"`
	Product    *models.Product `json:"product,omitempty"`
	ProductID  int             `json:"productId,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// Notifier is a best-effort sink for catalog events. Emit must not block
// the mutation path and gives no delivery guarantee.
type Notifier interface {
	Emit(event Event)
}

// NewCreateEvent builds the envelope for a created product.
func NewCreateEvent(product *models.Product) Event {
	return newEvent(EventCreate, product, 0)
}

// NewUpdateEvent builds the envelope for an updated product.
func NewUpdateEvent(product *models.Product) Event {
	return newEvent(EventUpdate, product, 0)
}

// NewDeleteEvent builds the envelope for a deleted product id.
func NewDeleteEvent(productID int) Event {
	return newEvent(EventDelete, nil, productID)
}

func newEvent(kind EventKind, product *models.Product, productID int) Event {
	return Event{
		EventID:    uuid.New().String(),
		Kind:       kind,
		Product:    product,
		ProductID:  productID,
		OccurredAt: time.Now(),
	}
}

// Multi fans one event out to several notifiers.
type Multi []Notifier

// Emit delivers the event to every notifier in order.
func (m Multi) Emit(event Event) {
	for _, n := range m {
		n.Emit(event)
	}
}
