package handlers

import (
	"log"

	"tienda/pkg/broadcast"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RealtimeHandler streams catalog change events to connected viewers over
// a websocket.
type RealtimeHandler struct {
	hub *broadcast.Hub
}

// NewRealtimeHandler creates a new RealtimeHandler fed by the given hub.
func NewRealtimeHandler(hub *broadcast.Hub) *RealtimeHandler {
	return &RealtimeHandler{
		hub: hub,
	}
}

// RegisterRoutes registers the websocket endpoint on the app.
func (h *RealtimeHandler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/products", websocket.New(h.handleProducts))
}

func (h *RealtimeHandler) handleProducts(conn *websocket.Conn) {
	sub := h.hub.Subscribe()
	defer h.hub.Unsubscribe(sub)

	// Read pump: inbound messages are discarded, the store is the only
	// event source. A read error means the viewer went away.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("Websocket write failed: %v", err)
				return
			}
		case <-done:
			return
		}
	}
}
