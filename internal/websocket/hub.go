package websocket

import (
	"errors"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// ErrClientClosed is returned when attempting to send to a closed client
var ErrClientClosed = errors.New("client is closed")

// ClientInterface defines the interface that clients must implement
type ClientInterface interface {
	ID() string
	Month() string
	Send(data []byte) error
	Close() error
}

// Hub manages WebSocket connections organized by the report month they watch.
// It is safe for concurrent use.
type Hub struct {
	// months maps a "YYYY-MM" key to a map of client ID to client
	months map[string]map[string]ClientInterface
	mu     sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		months: make(map[string]map[string]ClientInterface),
	}
}

// Register adds a client to the hub under its month
func (h *Hub) Register(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	month := client.Month()
	if h.months[month] == nil {
		h.months[month] = make(map[string]ClientInterface)
	}
	h.months[month][client.ID()] = client

	log.Debug().
		Str("month", month).
		Str("client_id", client.ID()).
		Msg("WebSocket client registered")
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(client ClientInterface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	month := client.Month()
	clients, ok := h.months[month]
	if !ok {
		return
	}
	if _, exists := clients[client.ID()]; !exists {
		return
	}

	delete(clients, client.ID())
	if len(clients) == 0 {
		delete(h.months, month)
	}

	log.Debug().
		Str("month", month).
		Str("client_id", client.ID()).
		Msg("WebSocket client unregistered")
}

// Broadcast sends an event to every client watching month
func (h *Hub) Broadcast(month string, event Event) {
	data, err := event.ToJSON()
	if err != nil {
		log.Error().
			Err(err).
			Str("month", month).
			Str("event_type", event.Type).
			Msg("Failed to serialize event")
		return
	}

	h.mu.RLock()
	clients := make([]ClientInterface, 0, len(h.months[month]))
	for _, client := range h.months[month] {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	if len(clients) == 0 {
		return
	}

	// Send outside the lock; a slow client must not block the others
	for _, client := range clients {
		go func(c ClientInterface) {
			if err := c.Send(data); err != nil {
				log.Warn().
					Err(err).
					Str("month", month).
					Str("client_id", c.ID()).
					Msg("Failed to send to client")
			}
		}(client)
	}

	log.Debug().
		Str("month", month).
		Str("event_type", event.Type).
		Int("client_count", len(clients)).
		Msg("Broadcast event")
}

// Months returns the months that have at least one subscriber, newest first
func (h *Hub) Months() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	months := make([]string, 0, len(h.months))
	for month := range h.months {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months
}

// ClientCount returns the number of clients watching a month
func (h *Hub) ClientCount(month string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.months[month])
}

// TotalClientCount returns the total number of connected clients
func (h *Hub) TotalClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, clients := range h.months {
		total += len(clients)
	}
	return total
}
