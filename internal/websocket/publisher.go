package websocket

// EventPublisher defines the interface for publishing report events to WebSocket clients
type EventPublisher interface {
	// Publish sends an event to all clients subscribed to month
	Publish(month string, event Event)
	// Months lists the months that currently have subscribers
	Months() []string
}

// Ensure Hub implements EventPublisher
var _ EventPublisher = (*Hub)(nil)

// Publish implements EventPublisher by broadcasting the event to the month's subscribers
func (h *Hub) Publish(month string, event Event) {
	h.Broadcast(month, event)
}

// NoOpPublisher is a publisher that does nothing (for the CLI or when push is disabled)
type NoOpPublisher struct{}

// Publish does nothing
func (n *NoOpPublisher) Publish(month string, event Event) {}

// Months returns no months
func (n *NoOpPublisher) Months() []string { return nil }
