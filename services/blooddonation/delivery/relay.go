package delivery

import (
	"sync"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

// relayHub is a pass-through channel: a {"message": ...} payload received
// from any connected client is echoed to every connected client. No auth,
// no schema; glue for the frontend dashboards only.
type relayHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     *logrus.Logger
}

func NewRealtimeRelay(app *fiber.App, log *logrus.Logger) {
	hub := &relayHub{
		clients: make(map[*websocket.Conn]bool),
		log:     log,
	}

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/blood-requests", websocket.New(hub.handle))
}

func (h *relayHub) handle(conn *websocket.Conn) {
	h.register(conn)
	defer h.unregister(conn)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var body struct {
			Message interface{} `json:"message"`
		}
		if err := sonic.Unmarshal(payload, &body); err != nil {
			h.log.Warnf("Relay received malformed payload: %v", err)
			continue
		}

		out, err := sonic.Marshal(map[string]interface{}{
			"message": body.Message,
		})
		if err != nil {
			h.log.Errorf("Relay failed to encode payload: %v", err)
			continue
		}

		h.broadcast(out)
	}
}

func (h *relayHub) register(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = true
}

func (h *relayHub) unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, conn)
	conn.Close()
}

func (h *relayHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.log.Warnf("Relay write failed, dropping client: %v", err)
			delete(h.clients, conn)
			conn.Close()
		}
	}
}
