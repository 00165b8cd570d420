// Package stream pushes live fleet snapshots to connected dashboards over
// WebSocket.
package stream

import (
	"log"
	"net/http"
	"sync"

	"trackify/internal/metrics"
	"trackify/internal/models"
	"trackify/internal/modules/alerts"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// upgrader is used to upgrade HTTP connections to WebSocket connections.
// Origin checks are left to the CORS middleware on the REST layer.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DeviceLister supplies current devices for the snapshot.
type DeviceLister interface {
	List() []models.Device
}

// Snapshot is the message pushed after every tick and user mutation.
type Snapshot struct {
	Devices []models.Device `json:"devices"`
	Alerts  []models.Alert  `json:"alerts"`
}

// Hub fans snapshots out to all connected clients. Writes that fail drop
// the client; there is no send queue or backpressure.
type Hub struct {
	devices DeviceLister
	alerts  *alerts.Log

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

// NewHub creates a hub reading from the given sources.
func NewHub(devices DeviceLister, alertLog *alerts.Log) *Hub {
	return &Hub{
		devices: devices,
		alerts:  alertLog,
		clients: make(map[*websocket.Conn]bool),
	}
}

// snapshot builds the current wire message.
func (h *Hub) snapshot() Snapshot {
	return Snapshot{
		Devices: h.devices.List(),
		Alerts:  h.alerts.Query(),
	}
}

// Publish sends the current snapshot to every connected client.
func (h *Hub) Publish() {
	snap := h.snapshot()

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		if err := conn.WriteJSON(snap); err != nil {
			conn.Close()
			delete(h.clients, conn)
			metrics.StreamClients.Add(-1)
		}
	}
}

// HandleFleet upgrades GET /ws/fleet to a WebSocket, sends an initial
// snapshot, and keeps the connection registered until the peer goes away.
func (h *Hub) HandleFleet(c echo.Context) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	// Register and write the initial snapshot under the same lock section:
	// once the connection is in h.clients, Publish may write to it from the
	// driver goroutine, and the connection allows only one writer at a time.
	snap := h.snapshot()
	h.mu.Lock()
	h.clients[conn] = true
	writeErr := conn.WriteJSON(snap)
	h.mu.Unlock()
	metrics.StreamClients.Add(1)

	if writeErr != nil {
		log.Printf("stream: initial snapshot write failed: %v", writeErr)
	}

	// Drain reads until the peer closes; the dashboard never sends data.
	go func() {
		defer func() {
			h.mu.Lock()
			if h.clients[conn] {
				delete(h.clients, conn)
				metrics.StreamClients.Add(-1)
			}
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	return nil
}
