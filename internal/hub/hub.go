package hub

import (
	"sync"

	"github.com/aidarkhanov/nanoid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const clientIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

var (
	eventsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusconnect_live_events_delivered_total",
		Help: "Live events queued for a connected client, by event name",
	}, []string{"event"})

	eventsDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "campusconnect_live_events_dropped_total",
		Help: "Live events dropped, by event name and reason (offline, backpressure)",
	}, []string{"event", "reason"})

	clientsOnline = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "campusconnect_live_clients",
		Help: "Live clients currently registered in at least one room",
	})
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is one live connection. Events are queued in arrival order and read
// by the transport (Socket.IO pump or SSE stream) through Events.
type Client struct {
	id     string
	events chan Event
	closed bool // guarded by Hub.mu
}

// NewClient creates a client with a queue of the given capacity.
func NewClient(buffer int) (*Client, error) {
	id, err := nanoid.GenerateString(clientIDAlphabet, 12)
	if err != nil {
		return nil, err
	}
	if buffer < 1 {
		buffer = 1
	}
	return &Client{id: id, events: make(chan Event, buffer)}, nil
}

func (c *Client) ID() string { return c.id }

// Events is closed once the client is disconnected from the hub.
func (c *Client) Events() <-chan Event { return c.events }

// Hub maps user ids to the live clients registered under them. A client may
// join several rooms; it is delivered an event once per Publish call.
type Hub struct {
	rooms   map[string]map[*Client]bool
	clients map[*Client]map[string]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		rooms:   make(map[string]map[*Client]bool),
		clients: make(map[*Client]map[string]bool),
	}
}

// Join adds client to the room of userID. Joining after Disconnect is a no-op.
func (h *Hub) Join(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed {
		return
	}

	if _, ok := h.rooms[userID]; !ok {
		h.rooms[userID] = make(map[*Client]bool)
	}
	h.rooms[userID][client] = true

	if _, ok := h.clients[client]; !ok {
		h.clients[client] = make(map[string]bool)
		clientsOnline.Inc()
	}
	h.clients[client][userID] = true
}

// Leave removes client from the room of userID. The client stays open.
func (h *Hub) Leave(userID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(userID, client)
	if rooms, ok := h.clients[client]; ok && len(rooms) == 0 {
		delete(h.clients, client)
		clientsOnline.Dec()
	}
}

// Disconnect removes client from every room and closes its queue.
func (h *Hub) Disconnect(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if rooms, ok := h.clients[client]; ok {
		for userID := range rooms {
			h.removeLocked(userID, client)
		}
		delete(h.clients, client)
		clientsOnline.Dec()
	}
	if !client.closed {
		client.closed = true
		close(client.events) // Signal the transport to stop.
	}
}

func (h *Hub) removeLocked(userID string, client *Client) {
	if clients, ok := h.rooms[userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.rooms, userID)
		}
	}
	if rooms, ok := h.clients[client]; ok {
		delete(rooms, userID)
	}
}

// Publish queues the event for every client registered under any of userIDs
// and returns how many clients received it. Users without a live client are
// skipped; a client whose queue is full misses the event.
func (h *Hub) Publish(userIDs []string, event string, payload interface{}) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	msg := Event{Type: event, Payload: payload}
	seen := make(map[*Client]bool)
	delivered := 0

	for _, userID := range userIDs {
		clients, ok := h.rooms[userID]
		if !ok {
			eventsDropped.WithLabelValues(event, "offline").Inc()
			continue
		}

		for client := range clients {
			if seen[client] {
				continue
			}
			seen[client] = true

			// Use a non-blocking send to prevent a slow client from blocking the hub.
			select {
			case client.events <- msg:
				delivered++
				eventsDelivered.WithLabelValues(event).Inc()
			default:
				eventsDropped.WithLabelValues(event, "backpressure").Inc()
			}
		}
	}
	return delivered
}

// Online reports whether userID has at least one live client.
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID]) > 0
}
